package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestServer(t *testing.T) (*Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	return New(zap.New(core), ';'), logs
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func createSession(t *testing.T, s *Server) string {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		ID string `json:"id"`
	}
	decode(t, rec, &resp)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestGenerateScenario(t *testing.T) {
	s, logs := newTestServer(t)
	id := createSession(t, s)
	base := "/sessions/" + id

	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, base+"/teachers", nameRequest{Name: "T1"}).Code)
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, base+"/teachers", nameRequest{Name: "T2"}).Code)
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, base+"/subjects", nameRequest{Name: "Math"}).Code)
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, base+"/subjects", nameRequest{Name: "Physics"}).Code)
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, base+"/classrooms", classroomRequest{Room: "Room101"}).Code)
	rec := do(t, s, http.MethodPost, base+"/time-slots", timeSlotRequest{TimeSlot: "8:00 AM - 9:30 AM"})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"added":"8:00 AM - 9:30 AM"}`, rec.Body.String())

	t.Run("export before generate", func(t *testing.T) {
		require.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, base+"/export", nil).Code)
	})

	rec = do(t, s, http.MethodPost, base+"/schedule", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp scheduleResponse
	decode(t, rec, &resp)
	require.Len(t, resp.Schedule, 1)
	require.Equal(t, "Math", resp.Schedule[0].Subject)
	require.Equal(t, "Room101", resp.Schedule[0].Room)
	require.Equal(t, "T1", resp.Schedule[0].Teacher)
	require.Equal(t, []string{"Physics"}, resp.Unassigned)
	require.Len(t, resp.Bookings, 1)
	require.Equal(t, 1, resp.Teachers[0].Count)
	require.Equal(t, 0, resp.Teachers[1].Count)
	require.Equal(t, 1, logs.FilterMessage("No available teacher for subject: Physics").Len())

	rec = do(t, s, http.MethodGet, base+"/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var export struct {
		Data string `json:"data"`
	}
	decode(t, rec, &export)
	require.Equal(t, "subject,room,time_slot,teacher\nMath,Room101,8:00 AM - 9:30 AM,T1\n", export.Data)

	rec = do(t, s, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var state sessionResponse
	decode(t, rec, &state)
	require.Equal(t, id, state.ID)
	require.Equal(t, []string{"Math", "Physics"}, state.Subjects)
	require.Equal(t, []string{"8:00 AM - 9:30 AM"}, state.TimeSlots)
}

func TestValidationErrors(t *testing.T) {
	s, _ := newTestServer(t)
	id := createSession(t, s)
	base := "/sessions/" + id

	require.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, base+"/teachers", nameRequest{}).Code)
	require.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, base+"/time-slots", timeSlotRequest{TimeSlot: "8-9"}).Code)

	req := httptest.NewRequest(http.MethodPost, base+"/subjects", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownSession(t *testing.T) {
	s, _ := newTestServer(t)
	require.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/sessions/nope", nil).Code)
	require.Equal(t, http.StatusNotFound, do(t, s, http.MethodPost, "/sessions/nope/schedule", nil).Code)
	require.Equal(t, http.StatusNotFound, do(t, s, http.MethodPost, "/sessions/nope/teachers", nameRequest{Name: "T"}).Code)
}

func TestListSessions(t *testing.T) {
	s, _ := newTestServer(t)
	a := createSession(t, s)
	b := createSession(t, s)

	rec := do(t, s, http.MethodGet, "/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		IDs []string `json:"sessionIds"`
	}
	decode(t, rec, &resp)
	require.ElementsMatch(t, []string{a, b}, resp.IDs)
}

func TestImport(t *testing.T) {
	s, _ := newTestServer(t)
	id := createSession(t, s)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	files := map[string]string{
		"teachers":   "name\nT1\n",
		"subjects":   "name\nMath\nArt\n",
		"classrooms": "room\nR1\n",
		"time_slots": "time_slot\n8:00 - 9:00\n9:00 - 10:00\n",
	}
	for field, content := range files {
		w, err := mw.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/import", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var state sessionResponse
	decode(t, rec, &state)
	require.Len(t, state.Teachers, 1)
	require.Equal(t, []string{"Math", "Art"}, state.Subjects)
	require.Equal(t, []string{"R1"}, state.Classrooms)
	require.Equal(t, []string{"8:00 - 9:00", "9:00 - 10:00"}, state.TimeSlots)

	rec = do(t, s, http.MethodPost, "/sessions/"+id+"/schedule", nil)
	var resp scheduleResponse
	decode(t, rec, &resp)
	require.Len(t, resp.Schedule, 2)
	require.Empty(t, resp.Unassigned)
}

func TestHealthAndPreflight(t *testing.T) {
	s, _ := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/health", nil).Code)

	rec := do(t, s, http.MethodOptions, "/sessions", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
