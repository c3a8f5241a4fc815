package model

// AssignOutcome reports what happened to an assignment request.
type AssignOutcome int

const (
	Booked AssignOutcome = iota
	CapacityExceeded
	SlotTaken
)

func (o AssignOutcome) String() string {
	switch o {
	case Booked:
		return "booked"
	case CapacityExceeded:
		return "capacity exceeded"
	case SlotTaken:
		return "slot taken"
	}
	return "unknown"
}
