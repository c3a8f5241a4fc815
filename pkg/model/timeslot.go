package model

import (
	"errors"
	"fmt"
	"strings"
)

// TimeSlotSeparator joins the start and end labels of a time slot.
const TimeSlotSeparator = " - "

var ErrMalformedTimeSlot = errors.New("malformed time slot")

// TimeSlot is a free-text time range. Its String form is the booking key.
type TimeSlot struct {
	Start string
	End   string
}

func NewTimeSlot(start string, end string) *TimeSlot {
	return &TimeSlot{Start: start, End: end}
}

// ParseTimeSlot splits "<start> - <end>" into a TimeSlot.
func ParseTimeSlot(raw string) (*TimeSlot, error) {
	parts := strings.Split(raw, TimeSlotSeparator)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q (expected \"<start>%s<end>\")", ErrMalformedTimeSlot, raw, TimeSlotSeparator)
	}
	return NewTimeSlot(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])), nil
}

func (ts *TimeSlot) String() string {
	return ts.Start + TimeSlotSeparator + ts.End
}
