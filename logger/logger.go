// Package logger configures leveled, module-tagged logging for the
// command-line tools. Library packages stay log-free; they report
// through error returns only.
package logger

import (
	"os"
	"strings"

	"github.com/op/go-logging"
)

// defaultLogFormat tags every record with time, module and level.
const defaultLogFormat = "%{color}%{time:15:04:05.000} %{module} %{level:.8s}%{color:reset} %{message}"

// NewLogger returns a logger for the given module at the given level.
// Unknown level names fall back to INFO.
func NewLogger(level, module string) *logging.Logger {
	log := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultLogFormat))
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)
	log.SetBackend(leveled)

	return log
}
