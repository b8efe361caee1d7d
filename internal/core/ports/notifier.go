package ports

import (
	"context"

	"purchasing/internal/core/domain/model/kernel"
)

// Level is the severity of a user-facing notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a short human-readable message for one user.
type Notification struct {
	Recipient kernel.UUID
	Level     Level
	Message   string
}

// Notifier is fire-and-forget: delivery problems are the sink's concern and
// never reach the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
