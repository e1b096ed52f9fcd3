package record

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/userdash/internal/platform/errors"
)

// Status is the membership state of a user.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusInvited Status = "INVITED"
	StatusBlocked Status = "BLOCKED"
)

var (
	// ErrNotFound indicates no record exists for the requested id.
	ErrNotFound = apperrors.New(apperrors.CodeUserNotFound, "record not found")
	// ErrInvalidStatus indicates a status outside the supported set.
	ErrInvalidStatus = apperrors.New(apperrors.CodeStatusInvalid, "invalid status")
	// ErrDuplicateID indicates two records share an id on load.
	ErrDuplicateID = apperrors.New(apperrors.CodeUserDuplicateID, "duplicate record id")
	// ErrEmptyID indicates a record without an id on load.
	ErrEmptyID = apperrors.New(apperrors.CodeUserIDEmpty, "record id is required")
)

// Statuses returns every supported status in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusInvited, StatusBlocked}
}

// Valid reports whether s is a supported status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInvited, StatusBlocked:
		return true
	default:
		return false
	}
}

// ParseStatus parses a status name case-insensitively.
func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(value)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
	return status, nil
}

// About holds the profile fields of a record.
type About struct {
	Name   string
	Status Status
	Email  string
}

// Details holds the invitation fields of a record.
type Details struct {
	// Date is human formatted, e.g. "05 Mar 2024".
	Date      string
	InvitedBy string
}

// Record is one user row.
type Record struct {
	ID      string
	About   About
	Details Details
}
