// Package domain defines the business logic for the extracurricular signup service.
package domain

import "errors"

// ErrActivityNotFound is returned when an activity name is not present in the registry.
var ErrActivityNotFound = errors.New("activity not found")

// Activity describes one extracurricular offering and its roster.
// MaxParticipants is displayed to students but never enforced; the roster
// keeps signup order and permits repeated emails.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}
