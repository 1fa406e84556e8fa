// Package dbusservice exposes the picker on the session bus so other
// programs can start a pick and receive the result.
package dbusservice

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

const (
	ServiceName = "com.deepin.Picker"
	ObjectPath  = dbus.ObjectPath("/com/deepin/Picker")
	Interface   = "com.deepin.Picker"

	signalColorPicked = Interface + ".ColorPicked"
)

var ErrNameTaken = errors.New("dbusservice: " + ServiceName + " is already owned")

type emitter interface {
	Emit(path dbus.ObjectPath, name string, values ...interface{}) error
}

// Service owns the bus name for the lifetime of the process.
type Service struct {
	conn     *dbus.Conn
	emit     emitter
	requests chan string
}

// object is what gets exported; its exported methods become bus methods.
type object struct {
	requests chan<- string
}

// StartPick asks the picker to begin a session for the caller identified by
// id. Requests arriving while one is already queued are dropped.
func (o *object) StartPick(id string) *dbus.Error {
	select {
	case o.requests <- id:
	default:
		log.Printf("dbus: StartPick(%q) ignored, a session is already pending", id)
	}
	return nil
}

func newService(conn *dbus.Conn, emit emitter) *Service {
	return &Service{conn: conn, emit: emit, requests: make(chan string, 1)}
}

// Start connects to the session bus, claims ServiceName and exports the
// picker object.
func Start() (*Service, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("dbus connect: %w", err)
	}
	reply, err := conn.RequestName(ServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("request name %s: %w", ServiceName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return nil, ErrNameTaken
	}

	s := newService(conn, conn)
	obj := &object{requests: s.requests}
	if err := conn.Export(obj, ObjectPath, Interface); err != nil {
		conn.Close()
		return nil, fmt.Errorf("export %s: %w", ObjectPath, err)
	}
	intro := introspect.NewIntrospectable(node(obj))
	if err := conn.Export(intro, ObjectPath, "org.freedesktop.DBus.Introspectable"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("export introspection: %w", err)
	}
	log.Printf("dbus: serving %s at %s", ServiceName, ObjectPath)
	return s, nil
}

func node(obj *object) *introspect.Node {
	return &introspect.Node{
		Name: string(ObjectPath),
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name:    Interface,
				Methods: introspect.Methods(obj),
				Signals: []introspect.Signal{{
					Name: "ColorPicked",
					Args: []introspect.Arg{
						{Name: "id", Type: "s"},
						{Name: "color", Type: "s"},
					},
				}},
			},
		},
	}
}

// WaitSession blocks until a StartPick call arrives or ctx is done.
func (s *Service) WaitSession(ctx context.Context) (string, error) {
	select {
	case id := <-s.requests:
		return id, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ColorPicked broadcasts the ColorPicked(id, color) signal.
func (s *Service) ColorPicked(sessionID, hex string) error {
	if err := s.emit.Emit(ObjectPath, signalColorPicked, sessionID, hex); err != nil {
		return fmt.Errorf("emit %s: %w", signalColorPicked, err)
	}
	return nil
}

func (s *Service) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
