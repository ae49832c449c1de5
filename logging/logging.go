package logging

import (
	"os"

	"github.com/op/go-logging"
)

var Log = logging.MustGetLogger("gridsnake")
var format = logging.MustStringFormatter(
	`%{color} %{shortfunc} ▶ %{level:.4s} %{id:03x}%{color:reset} %{message}`,
)

// initializes logging framework. An unknown level falls back to INFO.
func InitLogging(level string) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)

	if err != nil {
		Log.Warningf("unknown log level %q, using INFO", level)
	}
}
