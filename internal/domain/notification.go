package domain

import "time"

// Notification is one entry in a user's notification feed.
type Notification struct {
	ID        int64
	UserID    int64
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
