package scheduler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rhyrak/class-scheduler/pkg/model"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

func teachers(names ...string) []*model.Teacher {
	out := make([]*model.Teacher, 0, len(names))
	for _, n := range names {
		out = append(out, model.NewTeacher(n))
	}
	return out
}

func subjects(names ...string) []*model.Subject {
	out := make([]*model.Subject, 0, len(names))
	for _, n := range names {
		out = append(out, model.NewSubject(n))
	}
	return out
}

func rooms(ids ...string) []*model.Classroom {
	out := make([]*model.Classroom, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.NewClassroom(id))
	}
	return out
}

func hourSlots(n int) []*model.TimeSlot {
	out := make([]*model.TimeSlot, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.NewTimeSlot(fmt.Sprintf("%d:00", 8+i), fmt.Sprintf("%d:00", 9+i)))
	}
	return out
}

func TestFillSubjects_EndToEnd(t *testing.T) {
	ts := teachers("T1", "T2")
	rs := rooms("Room101")
	log, logs := observedLogger()

	schedule := FillSubjects(ts, subjects("Math", "Physics"), rs,
		[]*model.TimeSlot{model.NewTimeSlot("8:00 AM", "9:30 AM")}, log)

	require.Equal(t, 1, schedule.Len())
	p, ok := schedule.Get("Math")
	require.True(t, ok)
	require.Equal(t, model.Placement{Room: "Room101", TimeSlot: "8:00 AM - 9:30 AM", Teacher: "T1"}, p)
	_, ok = schedule.Get("Physics")
	require.False(t, ok)

	require.Equal(t, 1, ts[0].Count)
	require.Equal(t, 0, ts[1].Count)

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "No available teacher for subject: Physics", logs.All()[0].Message)

	b, ok := rs[0].Booking("8:00 AM - 9:30 AM")
	require.True(t, ok)
	require.Equal(t, model.Booking{Subject: "Math", Teacher: "T1"}, b)
}

func TestFillSubjects_NoTeachers(t *testing.T) {
	log, logs := observedLogger()
	schedule := FillSubjects(nil, subjects("Math"), rooms("R1"), hourSlots(1), log)

	require.Equal(t, 0, schedule.Len())
	require.Equal(t, 1, logs.Len())
	require.Contains(t, logs.All()[0].Message, "Math")
	require.Equal(t, "Math", logs.All()[0].ContextMap()["subject"])
}

func TestFillSubjects_Saturation(t *testing.T) {
	ts := teachers("Solo")
	log, logs := observedLogger()
	names := []string{"S1", "S2", "S3", "S4", "S5", "S6", "S7"}

	schedule := FillSubjects(ts, subjects(names...), rooms("R1"), hourSlots(7), log)

	require.Equal(t, model.MaxSubjectsPerTeacher, schedule.Len())
	require.Equal(t, model.MaxSubjectsPerTeacher, ts[0].Count)
	_, ok := schedule.Get("S7")
	require.False(t, ok)
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "No available teacher for subject: S7", logs.All()[0].Message)
}

func TestFillSubjects_LeastLoadedTeacherFirst(t *testing.T) {
	ts := teachers("Busy", "Free")
	ts[0].AssignSubject("Earlier")

	schedule := FillSubjects(ts, subjects("Math"), rooms("R1"), hourSlots(1), zap.NewNop())

	p, ok := schedule.Get("Math")
	require.True(t, ok)
	require.Equal(t, "Free", p.Teacher)
	require.Equal(t, 1, ts[0].Count)
	require.Equal(t, 1, ts[1].Count)
}

func TestFillSubjects_AlternatesBetweenTeachers(t *testing.T) {
	ts := teachers("A", "B")
	schedule := FillSubjects(ts, subjects("S1", "S2", "S3", "S4"), rooms("R1", "R2"), hourSlots(2), nil)

	got := []string{}
	for _, e := range schedule.Entries() {
		got = append(got, e.Subject+"@"+e.Room+"@"+e.TimeSlot+"@"+e.Teacher)
	}
	require.Equal(t, []string{
		"S1@R1@8:00 - 9:00@A",
		"S2@R2@8:00 - 9:00@B",
		"S3@R1@9:00 - 10:00@A",
		"S4@R2@9:00 - 10:00@B",
	}, got)
}

func TestFillSubjects_SkipsFullTeacher(t *testing.T) {
	ts := teachers("Full", "Loaded")
	for i := 0; i < model.MaxSubjectsPerTeacher; i++ {
		ts[0].AssignSubject("X")
	}
	ts[1].AssignSubject("Y")

	schedule := FillSubjects(ts, subjects("Math"), rooms("R1"), hourSlots(1), nil)

	p, ok := schedule.Get("Math")
	require.True(t, ok)
	require.Equal(t, "Loaded", p.Teacher)
	require.Equal(t, model.MaxSubjectsPerTeacher, ts[0].Count)
}

func TestFillSubjects_Deterministic(t *testing.T) {
	run := func() []model.ScheduleEntry {
		return FillSubjects(teachers("A", "B", "C"), subjects("S1", "S2", "S3", "S4", "S5"),
			rooms("R1", "R2"), hourSlots(3), nil).Entries()
	}
	require.Equal(t, run(), run())
}

func TestFillSubjects_StatePersistsAcrossCalls(t *testing.T) {
	ts := teachers("T1")
	rs := rooms("R1")
	slots := hourSlots(2)
	log, logs := observedLogger()

	first := FillSubjects(ts, subjects("Math"), rs, slots, log)
	require.Equal(t, "8:00 - 9:00", mustGet(t, first, "Math").TimeSlot)

	second := FillSubjects(ts, subjects("Physics", "Chemistry"), rs, slots, log)
	require.Equal(t, 1, second.Len())
	require.Equal(t, "9:00 - 10:00", mustGet(t, second, "Physics").TimeSlot)
	require.Equal(t, 2, ts[0].Count)
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "No available teacher for subject: Chemistry", logs.All()[0].Message)
}

func TestFillSubjects_Invariants(t *testing.T) {
	ts := teachers("A", "B")
	rs := rooms("R1", "R2", "R3")
	names := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		names = append(names, fmt.Sprintf("S%02d", i))
	}
	ss := subjects(names...)

	for i := 0; i < 3; i++ {
		FillSubjects(ts, ss, rs, hourSlots(4), nil)
	}

	for _, teacher := range ts {
		require.LessOrEqual(t, teacher.Count, model.MaxSubjectsPerTeacher)
	}
	for _, room := range rs {
		seen := map[string]bool{}
		for _, b := range room.Bookings() {
			require.False(t, seen[b.TimeSlot], "double booking in %s at %s", room.ID, b.TimeSlot)
			seen[b.TimeSlot] = true
		}
	}
}

func TestSortByLoadIsStable(t *testing.T) {
	ts := teachers("A", "B", "C", "D")
	ts[0].AssignSubject("x")
	ts[2].AssignSubject("x")

	sorted := sortByLoad(ts)
	require.Equal(t, []string{"B", "D", "A", "C"}, []string{sorted[0].Name, sorted[1].Name, sorted[2].Name, sorted[3].Name})
	require.Equal(t, "A", ts[0].Name)
}

func mustGet(t *testing.T, s *model.Schedule, subject string) model.Placement {
	t.Helper()
	p, ok := s.Get(subject)
	require.True(t, ok, "subject %s not scheduled", subject)
	return p
}
