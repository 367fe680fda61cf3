package championship

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var Debug = os.Getenv("DEBUG") == "true"

// InitLogging sets the logrus level and output. An unknown level falls back to info; DEBUG=true in the
// environment forces debug logging.
func InitLogging(level string, out io.Writer) {
	lvl, err := logrus.ParseLevel(level)

	if err != nil {
		logrus.WithError(err).Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}

	if Debug {
		lvl = logrus.DebugLevel
	}

	logrus.SetLevel(lvl)
	logrus.SetOutput(out)
}
