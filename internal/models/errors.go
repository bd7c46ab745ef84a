package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateKey  = errors.New("duplicate key violation")
	ErrNoBowls       = errors.New("no bowl records supplied")
	ErrSourceMissing = errors.New("record source not configured")
)

// MalformedBowlError reports a structurally invalid bowl record. It is fatal
// to a run: enumeration depends on a consistent bowl set.
type MalformedBowlError struct {
	Bowl   string
	Row    int
	Reason string
}

func (e *MalformedBowlError) Error() string {
	name := e.Bowl
	if name == "" {
		name = "<unnamed>"
	}
	if e.Row > 0 {
		return fmt.Sprintf("malformed bowl %q (row %d): %s", name, e.Row, e.Reason)
	}
	return fmt.Sprintf("malformed bowl %q: %s", name, e.Reason)
}

// ScenarioSpaceTooLargeError reports that the undecided-bowl count exceeds
// the configured enumeration guard.
type ScenarioSpaceTooLargeError struct {
	Undecided int
	Limit     int
}

func (e *ScenarioSpaceTooLargeError) Error() string {
	return fmt.Sprintf("%d undecided bowls exceed the enumeration limit of %d (2^%d scenarios)",
		e.Undecided, e.Limit, e.Undecided)
}

// DataQualityWarning flags a pick record the upstream validator should have
// caught. Warnings are emitted, never raised: the engine proceeds with the
// deterministic fallback and scores the bettor as best it can.
type DataQualityWarning struct {
	Bettor string
	Bowl   string
	Row    int
	Reason string
}

func (w DataQualityWarning) String() string {
	msg := fmt.Sprintf("bettor %q", w.Bettor)
	if w.Bowl != "" {
		msg += fmt.Sprintf(", bowl %q", w.Bowl)
	}
	if w.Row > 0 {
		msg += fmt.Sprintf(" (row %d)", w.Row)
	}
	return msg + ": " + w.Reason
}
