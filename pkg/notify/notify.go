package notify

import (
	"context"
	"log/slog"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier is the fire-and-forget toast collaborator. Implementations must
// never block the caller and have no return value the caller depends on.
type Notifier interface {
	Notify(ctx context.Context, title, message string, severity Severity)
}

type logNotifier struct{}

// NewLogNotifier emits notifications as structured log lines.
func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(ctx context.Context, title, message string, severity Severity) {
	slog.InfoContext(ctx, "notification",
		slog.String("title", title),
		slog.String("message", message),
		slog.String("severity", string(severity)),
	)
}
