package main

import (
	"github.com/sqweek/dialog"
)

const appTitle = "Screen Picker"

// showFatal tells the user about an error in a message box.
var showFatal = func(err error) {
	dialog.Message("%s", err.Error()).Title(appTitle).Error()
}
