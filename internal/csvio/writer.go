package csvio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/rhyrak/class-scheduler/pkg/model"
)

// ScheduleRows flattens a schedule into CSV rows in insertion order.
func ScheduleRows(schedule *model.Schedule) []*model.ScheduleCSVRow {
	rows := []*model.ScheduleCSVRow{}
	for _, e := range schedule.Entries() {
		rows = append(rows, &model.ScheduleCSVRow{
			Subject:  e.Subject,
			Room:     e.Room,
			TimeSlot: e.TimeSlot,
			Teacher:  e.Teacher,
		})
	}
	return rows
}

// BookingRows lists every classroom booking, classrooms in input order.
func BookingRows(rooms []*model.Classroom) []*model.BookingCSVRow {
	rows := []*model.BookingCSVRow{}
	for _, r := range rooms {
		for _, b := range r.Bookings() {
			rows = append(rows, &model.BookingCSVRow{
				Room:     r.ID,
				TimeSlot: b.TimeSlot,
				Subject:  b.Subject,
				Teacher:  b.Teacher,
			})
		}
	}
	return rows
}

// TeacherLoadRows reports each teacher's assignment count and subjects.
func TeacherLoadRows(teachers []*model.Teacher) []*model.TeacherLoadCSVRow {
	rows := []*model.TeacherLoadCSVRow{}
	for _, t := range teachers {
		rows = append(rows, &model.TeacherLoadCSVRow{
			Teacher:  t.Name,
			Count:    t.Count,
			Subjects: strings.Join(t.Subjects, "|"),
		})
	}
	return rows
}

func WriteSchedule(w io.Writer, schedule *model.Schedule) error {
	rows := ScheduleRows(schedule)
	return gocsv.Marshal(&rows, w)
}

func WriteBookings(w io.Writer, rooms []*model.Classroom) error {
	rows := BookingRows(rooms)
	return gocsv.Marshal(&rows, w)
}

func WriteTeacherLoads(w io.Writer, teachers []*model.Teacher) error {
	rows := TeacherLoadRows(teachers)
	return gocsv.Marshal(&rows, w)
}

// ExportScheduleString returns the schedule as CSV text.
func ExportScheduleString(schedule *model.Schedule) (string, error) {
	rows := ScheduleRows(schedule)
	return gocsv.MarshalString(&rows)
}

// ExportSchedule writes the schedule to the CSV file at path, replacing it.
func ExportSchedule(schedule *model.Schedule, path string) (string, error) {
	return exportFile(path, func(w io.Writer) error { return WriteSchedule(w, schedule) })
}

// ExportBookings writes all classroom bookings to the CSV file at path.
func ExportBookings(rooms []*model.Classroom, path string) (string, error) {
	return exportFile(path, func(w io.Writer) error { return WriteBookings(w, rooms) })
}

// ExportTeacherLoads writes teacher loads to the CSV file at path.
func ExportTeacherLoads(teachers []*model.Teacher, path string) (string, error) {
	return exportFile(path, func(w io.Writer) error { return WriteTeacherLoads(w, teachers) })
}

func exportFile(path string, write func(io.Writer) error) (string, error) {
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if err := write(out); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// PrintSchedule renders the schedule, classroom assignments and teacher
// loads as plain text.
func PrintSchedule(w io.Writer, schedule *model.Schedule, rooms []*model.Classroom, teachers []*model.Teacher) {
	fmt.Fprintln(w, "Final Schedule:")
	for _, e := range schedule.Entries() {
		fmt.Fprintf(w, "%s is taught in Room %s from %s by %s\n", e.Subject, e.Room, e.TimeSlot, e.Teacher)
	}

	fmt.Fprintln(w, "\nClassroom Assignments:")
	for _, r := range rooms {
		fmt.Fprintln(w, r.String())
	}

	fmt.Fprintln(w, "\nTeacher Assignments:")
	for _, t := range teachers {
		fmt.Fprintf(w, "%s (%d/%d)\n", t.String(), t.Count, model.MaxSubjectsPerTeacher)
	}
}
