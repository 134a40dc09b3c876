package entities

import "time"

// UnmatchedMessage is a backend message that no resolution rule recognized.
// Entries are keyed by their canonical form, so messages differing only in
// case or punctuation share one row.
type UnmatchedMessage struct {
	ID          uint
	Raw         string
	Canonical   string
	Locale      string
	Hits        int64
	FirstSeenAt time.Time
	LastSeenAt  time.Time
}
