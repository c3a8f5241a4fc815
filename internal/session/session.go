// Package session holds the entity collections a user builds up between
// schedule generations.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rhyrak/class-scheduler/internal/scheduler"
	"github.com/rhyrak/class-scheduler/pkg/model"
)

var ErrEmptyName = errors.New("name must not be empty")

// Session accumulates teachers, subjects, classrooms and time slots.
// Entities are never removed; generating a schedule mutates teacher loads
// and classroom bookings in place. A Session is not safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time

	Teachers   []*model.Teacher
	Subjects   []*model.Subject
	Classrooms []*model.Classroom
	TimeSlots  []*model.TimeSlot

	// Last is the schedule returned by the most recent Generate.
	Last *model.Schedule
}

func New() *Session {
	return &Session{ID: uuid.NewString(), CreatedAt: time.Now()}
}

func (s *Session) AddTeacher(name string) (*model.Teacher, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("teacher: %w", ErrEmptyName)
	}
	t := model.NewTeacher(name)
	s.Teachers = append(s.Teachers, t)
	return t, nil
}

func (s *Session) AddSubject(name string) (*model.Subject, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("subject: %w", ErrEmptyName)
	}
	subject := model.NewSubject(name)
	s.Subjects = append(s.Subjects, subject)
	return subject, nil
}

func (s *Session) AddClassroom(id string) (*model.Classroom, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("classroom: %w", ErrEmptyName)
	}
	c := model.NewClassroom(id)
	s.Classrooms = append(s.Classrooms, c)
	return c, nil
}

// AddTimeSlot parses raw as "<start> - <end>".
func (s *Session) AddTimeSlot(raw string) (*model.TimeSlot, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("time slot: %w", ErrEmptyName)
	}
	ts, err := model.ParseTimeSlot(raw)
	if err != nil {
		return nil, err
	}
	s.TimeSlots = append(s.TimeSlots, ts)
	return ts, nil
}

// Generate runs the assignment engine over the session's collections.
func (s *Session) Generate(log *zap.Logger) *model.Schedule {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("session", s.ID))
	s.Last = scheduler.FillSubjects(s.Teachers, s.Subjects, s.Classrooms, s.TimeSlots, log)
	log.Info("schedule generated",
		zap.Int("subjects", len(s.Subjects)),
		zap.Int("placed", s.Last.Len()),
	)
	return s.Last
}

// Unassigned lists subjects missing from the last generated schedule.
func (s *Session) Unassigned() []string {
	if s.Last == nil {
		return nil
	}
	var out []string
	for _, subject := range s.Subjects {
		if _, ok := s.Last.Get(subject.Name); !ok {
			out = append(out, subject.Name)
		}
	}
	return out
}
