package models

import "time"

// Patron holds the long-lived identity of the individual subject of one or
// more cases. Patrons accumulate case and file history over time and are
// never deleted by this application.
type Patron struct {
	Id           string
	FirstName    string
	LastName     string
	DateOfBirth  *time.Time
	Email        *string
	Phone        *string
	Address      *string
	GovernmentId *string
	Ssn          *string
	CreatedAt    time.Time

	// Derived, read-only aggregation of associated cases and files.
	Cases []Case
	Files []PatronFile
}

func (p Patron) FullName() string {
	return p.FirstName + " " + p.LastName
}

type CreatePatronAttributes struct {
	FirstName    string
	LastName     string
	DateOfBirth  *time.Time
	Email        *string
	Phone        *string
	Address      *string
	GovernmentId *string
	Ssn          *string
}

type UpdatePatronAttributes struct {
	Id           string
	FirstName    string
	LastName     string
	DateOfBirth  *time.Time
	Email        *string
	Phone        *string
	Address      *string
	GovernmentId *string
	Ssn          *string
}

type PatronFilters struct {
	Name string
}
