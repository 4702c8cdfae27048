package logging

import "github.com/vvka-141/movieapi/pkg/movieapi"

// NullLogger discards everything. Tests hand it to the loader and connectors.
type NullLogger struct{}

var _ movieapi.Logger = (*NullLogger)(nil)

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}
func (*NullLogger) Info(string, ...interface{})    {}
func (*NullLogger) Error(string, ...interface{})   {}
