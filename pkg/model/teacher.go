package model

import "strings"

// MaxSubjectsPerTeacher is the number of subjects a teacher can hold at once.
const MaxSubjectsPerTeacher = 6

type Teacher struct {
	Name     string
	Subjects []string
	Count    int
}

func NewTeacher(name string) *Teacher {
	return &Teacher{Name: name}
}

// CanTeach reports whether the teacher is below capacity.
func (t *Teacher) CanTeach() bool {
	return t.Count < MaxSubjectsPerTeacher
}

// AssignSubject records subject against the teacher.
// Returns CapacityExceeded and leaves the teacher untouched when full.
func (t *Teacher) AssignSubject(subject string) AssignOutcome {
	if !t.CanTeach() {
		return CapacityExceeded
	}
	t.Subjects = append(t.Subjects, subject)
	t.Count++
	return Booked
}

func (t *Teacher) String() string {
	return t.Name + ": " + strings.Join(t.Subjects, ", ")
}
