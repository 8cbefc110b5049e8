package model

// View identifies one of the three timeline projections.
type View string

const (
	ViewCalendar View = "calendar"
	ViewGantt    View = "gantt"
	ViewWeekly   View = "weekly"
)

// DefaultView is the projection a fresh timeline session opens with.
const DefaultView = ViewWeekly

// Valid reports whether v is one of the three known projections.
func (v View) Valid() bool {
	switch v {
	case ViewCalendar, ViewGantt, ViewWeekly:
		return true
	}
	return false
}
