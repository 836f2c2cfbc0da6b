package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is usable before BoostrapLogger runs so packages and tests never see a nil logger.
var Log = logrus.New()

func BoostrapLogger() {
	Log = &logrus.Logger{
		Out:   nil,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			DisableColors:    false,
			DisableQuote:     false,
			DisableTimestamp: false,
			FullTimestamp:    true,
			TimestampFormat:  "",
		},
		ReportCaller: false,
		Level:        logrus.DebugLevel,
		ExitFunc:     os.Exit,
	}

	Log.SetReportCaller(true)
	Log.Out = os.Stdout
}

// SetLevel parses a level name from config, keeping the current level when it is invalid.
func SetLevel(name string) {
	if name == "" {
		return
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		Log.Warnf("unknown log level %q, keeping %s", name, Log.GetLevel())
		return
	}
	Log.SetLevel(level)
}
