package models

// Lecturer holds a lecturer's contact details and weekly office hours.
// List fields are nil when empty.
type Lecturer struct {
	ID           int64
	Name         string
	Photo        string // optional photo reference
	PhoneNumbers []string
	Emails       []string
	Addresses    []string
	Websites     []string
	OfficeHours  []OfficeHour
}
