package a2l

import "github.com/go-stdlog/stdlog"

type Config struct {
	// Logger allows a given stdlog.Logger instance to be set as the package
	// logger. If unset, no logs will be generated.
	Logger stdlog.Logger
}

func (c Config) GetLogger() stdlog.Logger {
	if c.Logger != nil {
		return c.Logger.Named("a2l")
	}
	return stdlog.Discard
}
