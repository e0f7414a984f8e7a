package state

import "time"

// Snapshot is the persisted state of one cart session.
type Snapshot struct {
	// SessionID identifies the session that wrote the snapshot
	SessionID string `json:"session_id"`

	// Quantities holds the selected quantity per catalog index
	Quantities []int `json:"quantities"`

	// FeedPath is the command feed being followed, if any
	FeedPath string `json:"feed_path,omitempty"`

	// FeedOffset is the byte offset just past the last applied feed line
	FeedOffset int64 `json:"feed_offset,omitempty"`

	// SavedAt is the time of the last save
	SavedAt time.Time `json:"saved_at"`
}

// IsEmpty returns true if the snapshot has never been saved.
func (s Snapshot) IsEmpty() bool {
	return s.SessionID == "" && len(s.Quantities) == 0
}

// Matches reports whether the snapshot was taken over a catalog with n entries.
func (s Snapshot) Matches(n int) bool {
	return len(s.Quantities) == n
}

// Update records the current quantities and stamps the save time.
func (s *Snapshot) Update(quantities []int) {
	s.Quantities = append(s.Quantities[:0], quantities...)
	s.SavedAt = time.Now()
}

// UpdateFeed records the followed feed position.
func (s *Snapshot) UpdateFeed(path string, offset int64) {
	s.FeedPath = path
	s.FeedOffset = offset
}
