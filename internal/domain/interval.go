package domain

import "time"

// ConflictKind reports which kind of record blocks a window
type ConflictKind string

const (
	ConflictNone        ConflictKind = ""
	ConflictReservation ConflictKind = "reservation"
	ConflictMaintenance ConflictKind = "maintenance"
)

// Overlaps reports whether [s1, e1] and [s2, e2] intersect.
// Boundaries are inclusive: windows that only touch still conflict.
// The SQL filters use the same predicate: start <= $end AND end >= $start.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !e1.Before(s2)
}
