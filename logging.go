package chess

import (
	"os"

	"github.com/op/go-logging"
)

// log is the package-wide diagnostics logger, used to report invariant
// failures in lenient mode. Hosts that want a different sink can call
// SetBackend.
var log = logging.MustGetLogger("chess")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc} %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
}

// SetBackend replaces the logging backend with b, e.g. to raise
// verbosity or redirect output. Grounded on the same op/go-logging
// setup pattern as the rest of the pack's engines.
func SetBackend(b logging.Backend) {
	logging.SetBackend(b)
}
