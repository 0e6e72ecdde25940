// Package engine enforces the one-assignment-per-employee-per-day rule and
// the approval workflow for requestable shift types.
package engine

import (
	"strings"
	"time"

	"github.com/nextshift/shiftboard/pkg/db"
)

// DateLayout is the calendar date format used on the wire and in storage.
const DateLayout = "2006-01-02"

// Notifier delivers a plain-text message to an employee. Delivery is
// best-effort: approval and rejection succeed even when the notifier fails.
type Notifier interface {
	Notify(to, subject, body string) error
}

// deriveInitial derives the classification and initial approval status a
// fresh assignment gets from its template's name. REST and OFF shifts are
// requests and start pending; everything else is a regular shift nobody
// needs to sign off on.
func deriveInitial(templateName string) (shiftType, status string) {
	switch strings.ToUpper(strings.TrimSpace(templateName)) {
	case db.ShiftRest:
		return db.ShiftRest, db.StatusPending
	case db.ShiftOff:
		return db.ShiftOff, db.StatusPending
	}
	return db.ShiftRegular, db.StatusApproved
}

// deriveOnUpdate derives classification and status when an existing
// assignment is re-pointed at a template. Unlike deriveInitial, an OFF
// shift applied through edit is considered already granted and lands
// approved; only REST goes back to pending.
func deriveOnUpdate(templateName string) (shiftType, status string) {
	switch strings.ToUpper(strings.TrimSpace(templateName)) {
	case db.ShiftOff:
		return db.ShiftOff, db.StatusApproved
	case db.ShiftRest:
		return db.ShiftRest, db.StatusPending
	}
	return db.ShiftRegular, db.StatusApproved
}

func validDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
