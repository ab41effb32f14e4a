package test_sheets

import "context"

type StoreProber interface {
	Probe(ctx context.Context) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
