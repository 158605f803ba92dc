package feed

import "sync"

// NotificationFlag is the shared "unread activity exists" boolean read
// by any surface that renders a badge. Writes are last-write-wins; it is
// never cleared implicitly, only by an explicit Set(false).
type NotificationFlag struct {
	mu  sync.Mutex
	set bool
}

func NewNotificationFlag() *NotificationFlag {
	return &NotificationFlag{}
}

func (f *NotificationFlag) Set(v bool) {
	f.mu.Lock()
	f.set = v
	f.mu.Unlock()
}

func (f *NotificationFlag) Get() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set
}
