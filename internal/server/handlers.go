package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rhyrak/class-scheduler/internal/csvio"
	"github.com/rhyrak/class-scheduler/internal/session"
	"github.com/rhyrak/class-scheduler/pkg/model"
)

var errNoSchedule = errors.New("no schedule generated yet")

type nameRequest struct {
	Name string `json:"name"`
}

type classroomRequest struct {
	Room string `json:"room"`
}

type timeSlotRequest struct {
	TimeSlot string `json:"time_slot"`
}

type sessionResponse struct {
	ID         string                     `json:"id"`
	Teachers   []*model.TeacherLoadCSVRow `json:"teachers"`
	Subjects   []string                   `json:"subjects"`
	Classrooms []string                   `json:"classrooms"`
	TimeSlots  []string                   `json:"time_slots"`
	Bookings   []*model.BookingCSVRow     `json:"bookings"`
}

type scheduleResponse struct {
	Schedule   []*model.ScheduleCSVRow    `json:"schedule"`
	Unassigned []string                   `json:"unassigned"`
	Bookings   []*model.BookingCSVRow     `json:"bookings"`
	Teachers   []*model.TeacherLoadCSVRow `json:"teachers"`
}

func (s *Server) fail(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, errNoSchedule):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrEmptyName), errors.Is(err, model.ErrMalformedTimeSlot):
		status = http.StatusBadRequest
	}
	ctx.Error(err)
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) handleListSessions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"sessionIds": s.store.IDs(),
	})
}

func (s *Server) handleCreateSession(ctx *gin.Context) {
	sess := s.store.Create()
	ctx.JSON(http.StatusCreated, gin.H{
		"id": sess.ID,
	})
}

func (s *Server) handleGetSession(ctx *gin.Context) {
	var resp sessionResponse
	err := s.store.With(ctx.Param("id"), func(sess *session.Session) error {
		resp = describe(sess)
		return nil
	})
	if err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (s *Server) handleAddTeacher(ctx *gin.Context) {
	var req nameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.add(ctx, func(sess *session.Session) (string, error) {
		t, err := sess.AddTeacher(req.Name)
		if err != nil {
			return "", err
		}
		return t.Name, nil
	})
}

func (s *Server) handleAddSubject(ctx *gin.Context) {
	var req nameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.add(ctx, func(sess *session.Session) (string, error) {
		subject, err := sess.AddSubject(req.Name)
		if err != nil {
			return "", err
		}
		return subject.Name, nil
	})
}

func (s *Server) handleAddClassroom(ctx *gin.Context) {
	var req classroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.add(ctx, func(sess *session.Session) (string, error) {
		c, err := sess.AddClassroom(req.Room)
		if err != nil {
			return "", err
		}
		return c.ID, nil
	})
}

func (s *Server) handleAddTimeSlot(ctx *gin.Context) {
	var req timeSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.add(ctx, func(sess *session.Session) (string, error) {
		ts, err := sess.AddTimeSlot(req.TimeSlot)
		if err != nil {
			return "", err
		}
		return ts.String(), nil
	})
}

func (s *Server) add(ctx *gin.Context, fn func(*session.Session) (string, error)) {
	var added string
	err := s.store.With(ctx.Param("id"), func(sess *session.Session) error {
		var err error
		added, err = fn(sess)
		return err
	})
	if err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"added": added})
}

// handleImport appends entities from uploaded CSV files. Every form file
// (teachers, subjects, classrooms, time_slots) is optional.
func (s *Server) handleImport(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	readers := []struct {
		field string
		read  func(io.Reader, rune, *session.Session) error
	}{
		{"teachers", csvio.ReadTeachers},
		{"subjects", csvio.ReadSubjects},
		{"classrooms", csvio.ReadClassrooms},
		{"time_slots", csvio.ReadTimeSlots},
	}

	var resp sessionResponse
	err = s.store.With(ctx.Param("id"), func(sess *session.Session) error {
		for _, r := range readers {
			files := form.File[r.field]
			if len(files) == 0 {
				continue
			}
			if err := readUpload(files[0], s.delim, sess, r.read); err != nil {
				return fmt.Errorf("%s: %w", r.field, err)
			}
		}
		resp = describe(sess)
		return nil
	})
	if errors.Is(err, ErrSessionNotFound) {
		s.fail(ctx, err)
		return
	}
	if err != nil {
		ctx.Error(err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func readUpload(fh *multipart.FileHeader, delim rune, sess *session.Session, read func(io.Reader, rune, *session.Session) error) error {
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	return read(f, delim, sess)
}

func (s *Server) handleGenerate(ctx *gin.Context) {
	var resp scheduleResponse
	err := s.store.With(ctx.Param("id"), func(sess *session.Session) error {
		schedule := sess.Generate(s.log)
		resp = scheduleResponse{
			Schedule:   csvio.ScheduleRows(schedule),
			Unassigned: sess.Unassigned(),
			Bookings:   csvio.BookingRows(sess.Classrooms),
			Teachers:   csvio.TeacherLoadRows(sess.Teachers),
		}
		if resp.Unassigned == nil {
			resp.Unassigned = []string{}
		}
		return nil
	})
	if err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (s *Server) handleExport(ctx *gin.Context) {
	var data string
	err := s.store.With(ctx.Param("id"), func(sess *session.Session) error {
		if sess.Last == nil {
			return errNoSchedule
		}
		var err error
		data, err = csvio.ExportScheduleString(sess.Last)
		return err
	})
	if err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"data": data,
	})
}

func describe(sess *session.Session) sessionResponse {
	resp := sessionResponse{
		ID:         sess.ID,
		Teachers:   csvio.TeacherLoadRows(sess.Teachers),
		Subjects:   []string{},
		Classrooms: []string{},
		TimeSlots:  []string{},
		Bookings:   csvio.BookingRows(sess.Classrooms),
	}
	for _, subject := range sess.Subjects {
		resp.Subjects = append(resp.Subjects, subject.Name)
	}
	for _, c := range sess.Classrooms {
		resp.Classrooms = append(resp.Classrooms, c.ID)
	}
	for _, ts := range sess.TimeSlots {
		resp.TimeSlots = append(resp.TimeSlots, ts.String())
	}
	return resp
}
