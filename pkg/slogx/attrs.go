package slogx

import (
	"context"
	"log/slog"
)

// Error records err under "error". A nil error yields an empty attr which
// handlers drop.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the subject user under "user_id".
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// Security logs a warning tagged security=true so anomalies such as a sealed
// secret that no longer opens can be alerted on separately.
func Security(ctx context.Context, msg string, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.Bool("security", true))
	for _, a := range attrs {
		args = append(args, a)
	}
	FromContext(ctx).WarnContext(ctx, msg, args...)
}
