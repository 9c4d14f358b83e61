// Package sandbox runs a function on its own goroutine and reports how it finished.
// A function can return an error, panic, or stop its goroutine with runtime.Goexit
// (which is what testing.TB.FailNow does).
package sandbox

import (
	"runtime"
)

type Outcome struct {
	// Err is the error the function returned.
	Err error
	// Panic is set when the function panicked.
	Panic bool
	// PanicValue is nil for a panic(nil).
	PanicValue interface{}
	// Goexit is set when the function stopped its goroutine.
	Goexit bool
}

// OK reports whether the function returned without an error.
func (o Outcome) OK() bool { return !o.Panic && !o.Goexit && o.Err == nil }

func Run(fn func() error) Outcome {
	var (
		done     = make(chan struct{})
		out      Outcome
		returned bool
	)
	go func() {
		defer close(done)
		var recovered interface{}
		defer func() {
			if !returned && !out.Panic {
				out.Goexit = true
			}
		}()
		func() {
			defer func() { recovered = recover() }()
			out.Err = fn()
			returned = true
		}()
		// reached only when fn returned or panicked, a Goexit skips it
		if !returned {
			out.Panic = true
			if _, isNil := recovered.(*runtime.PanicNilError); !isNil {
				out.PanicValue = recovered
			}
		}
	}()
	<-done
	return out
}
