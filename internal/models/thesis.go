package models

import "time"

// Thesis groups article references and a set of ThesisTask rows.
type Thesis struct {
	ID       int64
	Title    string
	Articles []string
}

// ThesisTask is one step of a thesis, kept locally as its own table but
// mirrored remotely inside the parent thesis document.
type ThesisTask struct {
	ID        int64
	Name      string
	DueDate   time.Time
	Completed bool
	ThesisID  int64
}
