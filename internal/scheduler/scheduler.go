package scheduler

import (
	"go.uber.org/zap"

	"github.com/rhyrak/class-scheduler/pkg/model"
)

// FillSubjects tries to assign a time slot, room and teacher to every subject.
// Subjects are placed first-fit in input order: time slots, then classrooms,
// then teachers ordered by their current load. Teacher loads and classroom
// bookings are mutated in place and carry over between calls.
// Subjects that cannot be placed are left out of the returned schedule and
// reported on log.
func FillSubjects(teachers []*model.Teacher, subjects []*model.Subject, rooms []*model.Classroom, slots []*model.TimeSlot, log *zap.Logger) *model.Schedule {
	if log == nil {
		log = zap.NewNop()
	}
	schedule := model.NewSchedule()

	for _, subject := range subjects {
		placement, placed := placeSubject(subject, teachers, rooms, slots)
		if !placed {
			log.Info("No available teacher for subject: "+subject.Name, zap.String("subject", subject.Name))
			continue
		}
		schedule.Set(subject.Name, placement)
		log.Debug("subject placed",
			zap.String("subject", subject.Name),
			zap.String("room", placement.Room),
			zap.String("time_slot", placement.TimeSlot),
			zap.String("teacher", placement.Teacher),
		)
	}
	return schedule
}

// placeSubject books the first free (slot, room, teacher) combination.
func placeSubject(subject *model.Subject, teachers []*model.Teacher, rooms []*model.Classroom, slots []*model.TimeSlot) (model.Placement, bool) {
	for _, slot := range slots {
		label := slot.String()
		for _, room := range rooms {
			// Loads only change on a successful booking, which ends the search,
			// so sorting per room matches the ordering at every step.
			for _, teacher := range sortByLoad(teachers) {
				if !teacher.CanTeach() || !room.IsAvailable(label) {
					continue
				}
				if room.AssignSubject(subject.Name, label, teacher.Name) != model.Booked {
					continue
				}
				teacher.AssignSubject(subject.Name)
				return model.Placement{Room: room.ID, TimeSlot: label, Teacher: teacher.Name}, true
			}
		}
	}
	return model.Placement{}, false
}
