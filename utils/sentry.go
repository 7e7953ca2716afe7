package utils

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
)

// LogAndReportSentryError logs the full error chain and forwards it to
// sentry. Context cancellations and deadline hits are logged only: the
// request they belong to already surfaced its own failure.
func LogAndReportSentryError(ctx context.Context, err error) {
	logger := LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "unexpected error", slog.Any("error", err))

	if errors.IsAny(err, context.DeadlineExceeded, context.Canceled) {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}
