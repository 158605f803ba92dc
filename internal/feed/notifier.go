package feed

import "context"

// Notifier schedules a user-facing notification. Fire-and-forget; no
// delivery guarantee is required of implementations.
type Notifier interface {
	Notify(ctx context.Context, title, body string)
}

// NopNotifier discards notifications. Useful in tests and headless runs.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, string, string) {}
