package avl

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger sets the logger that receives contract violations (advancing
// past End, using an iterator after Clear, ...) in builds without the
// avlinvariants tag. A nil logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("avl"))
}

// assertf reports a violated precondition or invariant. With the
// avlinvariants build tag it panics; otherwise it logs and lets the caller
// carry on, so the outcome of the violating call is unspecified.
func assertf(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if invariantsEnabled {
		panic("avl: " + msg)
	}
	logger.Load().Error(msg, zap.Stack("stack"))
}
