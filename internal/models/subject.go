package models

// Subject is a course taught by one lecturer, optionally assisted by a
// second one. Color is a packed ARGB integer.
type Subject struct {
	ID                  int64
	Name                string
	Color               int64
	Room                string
	Description         string
	LecturerID          int64
	SecondaryLecturerID *int64
}
