package model

import "strings"

// Booking is a subject taught by a teacher, referenced by name.
type Booking struct {
	Subject string
	Teacher string
}

// SlotBooking pairs a booking with its time-slot label.
type SlotBooking struct {
	TimeSlot string
	Booking
}

type Classroom struct {
	ID       string
	schedule map[string]Booking
	order    []string
}

func NewClassroom(id string) *Classroom {
	return &Classroom{ID: id}
}

// IsAvailable checks if the classroom is free at the given time slot.
func (c *Classroom) IsAvailable(timeSlot string) bool {
	_, booked := c.schedule[timeSlot]
	return !booked
}

// AssignSubject books the time slot for subject and teacher.
// Returns SlotTaken without touching the existing booking if the slot is occupied.
func (c *Classroom) AssignSubject(subject string, timeSlot string, teacher string) AssignOutcome {
	if !c.IsAvailable(timeSlot) {
		return SlotTaken
	}
	if c.schedule == nil {
		c.schedule = make(map[string]Booking)
	}
	c.schedule[timeSlot] = Booking{Subject: subject, Teacher: teacher}
	c.order = append(c.order, timeSlot)
	return Booked
}

// Booking returns the booking held at timeSlot, if any.
func (c *Classroom) Booking(timeSlot string) (Booking, bool) {
	b, ok := c.schedule[timeSlot]
	return b, ok
}

// Bookings returns the classroom's bookings in the order they were made.
func (c *Classroom) Bookings() []SlotBooking {
	out := make([]SlotBooking, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, SlotBooking{TimeSlot: label, Booking: c.schedule[label]})
	}
	return out
}

func (c *Classroom) String() string {
	var sb strings.Builder
	sb.WriteString("Classroom " + c.ID + " Schedule:\n")
	lines := make([]string, 0, len(c.order))
	for _, b := range c.Bookings() {
		lines = append(lines, b.TimeSlot+": "+b.Subject+" by "+b.Teacher)
	}
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}
