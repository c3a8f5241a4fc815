package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/rhyrak/class-scheduler/internal/config"
	"github.com/rhyrak/class-scheduler/internal/session"
)

type nameCSV struct {
	Name string `csv:"name"`
}

type roomCSV struct {
	Room string `csv:"room"`
}

type timeSlotCSV struct {
	Raw string `csv:"time_slot"`
}

func unmarshal[T any](in io.Reader, delim rune) ([]*T, error) {
	r := csv.NewReader(in)
	r.Comma = delim
	r.TrimLeadingSpace = true

	rows := []*T{}
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadTeachers reads a "name" column into the session.
func ReadTeachers(in io.Reader, delim rune, s *session.Session) error {
	rows, err := unmarshal[nameCSV](in, delim)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if _, err := s.AddTeacher(row.Name); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}

// ReadSubjects reads a "name" column into the session.
func ReadSubjects(in io.Reader, delim rune, s *session.Session) error {
	rows, err := unmarshal[nameCSV](in, delim)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if _, err := s.AddSubject(row.Name); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}

// ReadClassrooms reads a "room" column into the session.
func ReadClassrooms(in io.Reader, delim rune, s *session.Session) error {
	rows, err := unmarshal[roomCSV](in, delim)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if _, err := s.AddClassroom(row.Room); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}

// ReadTimeSlots reads a "time_slot" column of "<start> - <end>" ranges into the session.
func ReadTimeSlots(in io.Reader, delim rune, s *session.Session) error {
	rows, err := unmarshal[timeSlotCSV](in, delim)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if _, err := s.AddTimeSlot(row.Raw); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}

// LoadSession builds a session from the four input files.
func LoadSession(in config.InputConfig, delim rune) (*session.Session, error) {
	s := session.New()
	loaders := []struct {
		path string
		read func(io.Reader, rune, *session.Session) error
	}{
		{in.TeachersFile, ReadTeachers},
		{in.SubjectsFile, ReadSubjects},
		{in.ClassroomsFile, ReadClassrooms},
		{in.TimeSlotsFile, ReadTimeSlots},
	}
	for _, l := range loaders {
		if err := loadFile(l.path, delim, s, l.read); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func loadFile(path string, delim rune, s *session.Session, read func(io.Reader, rune, *session.Session) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := read(f, delim, s); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
