package model

// Placement is where and by whom a subject is taught.
type Placement struct {
	Room     string
	TimeSlot string
	Teacher  string
}

// ScheduleEntry is a subject with its placement.
type ScheduleEntry struct {
	Subject string
	Placement
}

// Schedule maps subject names to placements, remembering insertion order.
type Schedule struct {
	placements map[string]Placement
	order      []string
}

/* NewSchedule creates an empty schedule. */
func NewSchedule() *Schedule {
	return &Schedule{placements: make(map[string]Placement)}
}

// Set records a placement. A subject that is already present keeps its
// position and has its placement replaced.
func (s *Schedule) Set(subject string, p Placement) {
	if _, ok := s.placements[subject]; !ok {
		s.order = append(s.order, subject)
	}
	s.placements[subject] = p
}

func (s *Schedule) Get(subject string) (Placement, bool) {
	p, ok := s.placements[subject]
	return p, ok
}

func (s *Schedule) Len() int {
	return len(s.order)
}

// Entries returns the schedule in insertion order.
func (s *Schedule) Entries() []ScheduleEntry {
	out := make([]ScheduleEntry, 0, len(s.order))
	for _, subject := range s.order {
		out = append(out, ScheduleEntry{Subject: subject, Placement: s.placements[subject]})
	}
	return out
}

type ScheduleCSVRow struct {
	Subject  string `csv:"subject" json:"subject"`
	Room     string `csv:"room" json:"room"`
	TimeSlot string `csv:"time_slot" json:"time_slot"`
	Teacher  string `csv:"teacher" json:"teacher"`
}

type BookingCSVRow struct {
	Room     string `csv:"room" json:"room"`
	TimeSlot string `csv:"time_slot" json:"time_slot"`
	Subject  string `csv:"subject" json:"subject"`
	Teacher  string `csv:"teacher" json:"teacher"`
}

type TeacherLoadCSVRow struct {
	Teacher  string `csv:"teacher" json:"teacher"`
	Count    int    `csv:"count" json:"count"`
	Subjects string `csv:"subjects" json:"subjects"`
}
