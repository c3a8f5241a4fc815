package scheduler

import (
	"fmt"

	"github.com/rhyrak/class-scheduler/pkg/model"
)

// Validate checks teacher capacity, schedule/booking consistency and
// unassigned subjects. Returns false and a message for invalid schedules,
// along with the names of subjects missing from the schedule.
func Validate(teachers []*model.Teacher, subjects []*model.Subject, rooms []*model.Classroom, schedule *model.Schedule) (bool, string, []string) {
	var message string
	var valid bool = true
	var overCapacity bool = false
	var inconsistent bool = false

	for _, t := range teachers {
		if t.Count > model.MaxSubjectsPerTeacher {
			valid = false
			overCapacity = true
			message += fmt.Sprintf("- Teacher %s holds %d subjects (limit %d)\n", t.Name, t.Count, model.MaxSubjectsPerTeacher)
		}
		if t.Count != len(t.Subjects) {
			valid = false
			inconsistent = true
			message += fmt.Sprintf("- Teacher %s count %d does not match %d assigned subjects\n", t.Name, t.Count, len(t.Subjects))
		}
	}

	roomsByID := make(map[string]*model.Classroom, len(rooms))
	for _, r := range rooms {
		if _, seen := roomsByID[r.ID]; !seen {
			roomsByID[r.ID] = r
		}
	}
	teachersByName := make(map[string]*model.Teacher, len(teachers))
	for _, t := range teachers {
		if _, seen := teachersByName[t.Name]; !seen {
			teachersByName[t.Name] = t
		}
	}

	for _, e := range schedule.Entries() {
		room, ok := roomsByID[e.Room]
		if !ok {
			valid = false
			inconsistent = true
			message += fmt.Sprintf("- Subject %s placed in unknown classroom %s\n", e.Subject, e.Room)
			continue
		}
		booking, ok := room.Booking(e.TimeSlot)
		if !ok || booking.Subject != e.Subject || booking.Teacher != e.Teacher {
			valid = false
			inconsistent = true
			message += fmt.Sprintf("- Classroom %s has no booking for %s at %s\n", e.Room, e.Subject, e.TimeSlot)
		}
		if t, ok := teachersByName[e.Teacher]; !ok || !containsString(t.Subjects, e.Subject) {
			valid = false
			inconsistent = true
			message += fmt.Sprintf("- Teacher %s is not assigned %s\n", e.Teacher, e.Subject)
		}
	}

	var unassigned []string
	for _, s := range subjects {
		if _, ok := schedule.Get(s.Name); !ok {
			unassigned = append(unassigned, s.Name)
		}
	}
	if len(unassigned) > 0 {
		valid = false
		message += fmt.Sprintf("- There are %d unassigned subjects:\n", len(unassigned))
		for _, un := range unassigned {
			message += fmt.Sprintf("    %s\n", un)
		}
	}

	if inconsistent {
		message = "[FAIL]: Booking consistency check.\n" + message
	} else {
		message = "[  OK]: Booking consistency check.\n" + message
	}
	if overCapacity {
		message = "[FAIL]: Teacher capacity check.\n" + message
	} else {
		message = "[  OK]: Teacher capacity check.\n" + message
	}
	if len(unassigned) > 0 {
		message = "[FAIL]: Subject has room check.\n" + message
	} else {
		message = "[  OK]: Subject has room check.\n" + message
	}

	return valid, message, unassigned
}
