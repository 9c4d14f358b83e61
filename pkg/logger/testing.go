package logger

import (
	"bytes"
	"strings"
)

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// Stub will restore the logger.Default after the test.
func Stub(tb testingTB) *bytes.Buffer {
	tb.Helper()
	og := Default.Out
	tb.Cleanup(func() { Default.Out = og })
	buf := &bytes.Buffer{}
	Default.Out = buf
	return buf
}

type testingLog interface {
	Helper()
	Log(args ...interface{})
}

// Testing returns a Logger that writes its entries to the test log,
// so the entries only show up for failing or verbose tests.
func Testing(tb testingLog) *Logger {
	return &Logger{Out: tbWriter{TB: tb}, Level: LevelDebug}
}

type tbWriter struct{ TB testingLog }

func (w tbWriter) Write(p []byte) (int, error) {
	w.TB.Helper()
	w.TB.Log(strings.TrimRight(string(p), "\r\n"))
	return len(p), nil
}
