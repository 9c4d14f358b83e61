package logger

import (
	"context"
)

type ctxKeyDetails struct{}

type ctxValue struct {
	Super   *ctxValue
	Details []LoggingDetail
}

// ContextWith attaches logging details to the context,
// and every log call made with the returned context will include them.
func ContextWith(ctx context.Context, lds ...LoggingDetail) context.Context {
	if len(lds) == 0 {
		return ctx
	}
	var v ctxValue
	if prev, ok := lookupValue(ctx); ok {
		v.Super = prev
	}
	v.Details = lds
	return context.WithValue(ctx, ctxKeyDetails{}, &v)
}

// getLoggingDetailsFromContext returns the details attached to the context
func getLoggingDetailsFromContext(ctx context.Context, l *Logger) logEntry {
	d := make(logEntry)
	if ctx == nil {
		return d
	}
	var chain []*ctxValue
	for v, ok := lookupValue(ctx); ok && v != nil; v = v.Super {
		chain = append(chain, v)
	}
	for i := len(chain) - 1; 0 <= i; i-- {
		for _, ld := range chain[i].Details {
			ld.addTo(l, d)
		}
	}
	return d
}

func lookupValue(ctx context.Context) (*ctxValue, bool) {
	if ptr, ok := ctx.Value(ctxKeyDetails{}).(*ctxValue); ok {
		return ptr, true
	}
	return nil, false
}
