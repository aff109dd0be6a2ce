package domain

import "time"

// Capsule is a ledger row for a time capsule this client created, kept so the
// notifier can announce it once the reveal time passes.
type Capsule struct {
	ID        int64
	PostID    string
	Title     string
	ChannelID string
	RevealAt  time.Time
	Notified  bool
	CreatedAt time.Time
}
