package logger

import (
	"context"
)

// Default is the Logger behind the package level logging functions,
// and the fallback of components that have no Logger configured.
var Default = &Logger{}

func Debug(ctx context.Context, msg string, ds ...LoggingDetail) { Default.Debug(ctx, msg, ds...) }

func Info(ctx context.Context, msg string, ds ...LoggingDetail) { Default.Info(ctx, msg, ds...) }

func Warn(ctx context.Context, msg string, ds ...LoggingDetail) { Default.Warn(ctx, msg, ds...) }

func Error(ctx context.Context, msg string, ds ...LoggingDetail) { Default.Error(ctx, msg, ds...) }

func Fatal(ctx context.Context, msg string, ds ...LoggingDetail) { Default.Fatal(ctx, msg, ds...) }
