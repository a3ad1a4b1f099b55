package format

//go:generate mockgen -source=reporter.go -destination=reporter_mock.go -package=format

import (
	"context"

	"go.uber.org/zap"
)

// ErrorReporter receives formatting failures that were degraded to a fallback
type ErrorReporter interface {
	Report(ctx context.Context, err error, tags map[string]string)
}

// NopReporter discards every report
type NopReporter struct{}

func (NopReporter) Report(context.Context, error, map[string]string) {}

// LogReporter writes reports to a zap logger at warn level
type LogReporter struct {
	logger *zap.Logger
}

// NewLogReporter creates a reporter backed by logger
func NewLogReporter(logger *zap.Logger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(_ context.Context, err error, tags map[string]string) {
	fields := make([]zap.Field, 0, len(tags)+1)
	fields = append(fields, zap.Error(err))
	for k, v := range tags {
		fields = append(fields, zap.String(k, v))
	}
	r.logger.Warn("formatting fallback", fields...)
}

// MultiReporter fans a report out to several reporters
type MultiReporter []ErrorReporter

func (m MultiReporter) Report(ctx context.Context, err error, tags map[string]string) {
	for _, r := range m {
		r.Report(ctx, err, tags)
	}
}
