// Package notify provides Notifier implementations. Actual delivery to a
// desktop or push channel is a collaborator concern; the default sink is
// the structured log.
package notify

import (
	"context"
	"log/slog"
)

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier backed by logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, title, body, icon string) {
	n.logger.Info("notification", "title", title, "body", body, "icon", icon)
}

// Noop discards notifications.
type Noop struct{}

func (Noop) Notify(ctx context.Context, title, body, icon string) {}
