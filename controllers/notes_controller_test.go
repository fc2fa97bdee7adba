package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"notes_api_go/config"
	"notes_api_go/data"
	"notes_api_go/models"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

// newTestRouter поднимает маршрутизатор заметок над временной БД.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "notes_test.db")
	require.NoError(t, data.InitSchema(dbPath))

	settings := &config.Settings{
		AppTitle:    "Notes API",
		AppVersion:  "0.1.0",
		NotesDBPath: dbPath,
	}

	notesController := NewNotesController(settings)
	healthController := NewHealthController(settings)

	router := mux.NewRouter()
	router.HandleFunc("/", healthController.HealthCheck).Methods(http.MethodGet)

	notesRouter := router.PathPrefix("/notes").Subrouter()
	notesRouter.HandleFunc("", notesController.CreateNoteHandler).Methods(http.MethodPost)
	notesRouter.HandleFunc("", notesController.ListNotesHandler).Methods(http.MethodGet)
	notesRouter.HandleFunc("/{id:[0-9]+}", notesController.GetNoteHandler).Methods(http.MethodGet)
	notesRouter.HandleFunc("/{id:[0-9]+}", notesController.UpdateNoteHandler).Methods(http.MethodPut)
	notesRouter.HandleFunc("/{id:[0-9]+}", notesController.DeleteNoteHandler).Methods(http.MethodDelete)

	return router
}

// doRequest выполняет запрос к тестовому маршрутизатору.
func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeNote(t *testing.T, rr *httptest.ResponseRecorder) models.Note {
	t.Helper()
	var note models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &note))
	return note
}

func createNote(t *testing.T, router *mux.Router, title string, content *string) models.Note {
	t.Helper()
	rr := doRequest(t, router, http.MethodPost, "/notes", models.CreateNoteRequest{Title: title, Content: content})
	require.Equal(t, http.StatusCreated, rr.Code)
	return decodeNote(t, rr)
}

func TestCreateNoteHandler(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/notes", models.CreateNoteRequest{Title: "T", Content: strPtr("C")})
	require.Equal(t, http.StatusCreated, rr.Code)

	note := decodeNote(t, rr)
	assert.Greater(t, note.ID, int64(0))
	assert.Equal(t, "T", note.Title)
	require.NotNil(t, note.Content)
	assert.Equal(t, "C", *note.Content)
	assert.True(t, note.CreatedAt.Equal(note.UpdatedAt))
}

func TestCreateNoteHandler_EmptyTitle(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/notes", models.CreateNoteRequest{Title: "   "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, router, http.MethodPost, "/notes", map[string]interface{}{"content": "C"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateNoteHandler_BadJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/notes", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetNoteHandler(t *testing.T) {
	router := newTestRouter(t)
	created := createNote(t, router, "T", strPtr("C"))

	rr := doRequest(t, router, http.MethodGet, "/notes/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	got := decodeNote(t, rr)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Content, got.Content)
}

func TestGetNoteHandler_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/notes/12345", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateNoteHandler(t *testing.T) {
	router := newTestRouter(t)
	created := createNote(t, router, "T", strPtr("C"))

	rr := doRequest(t, router, http.MethodPut, "/notes/"+itoa(created.ID), models.UpdateNoteRequest{Title: strPtr("T2")})
	require.Equal(t, http.StatusOK, rr.Code)

	updated := decodeNote(t, rr)
	assert.Equal(t, "T2", updated.Title)
	require.NotNil(t, updated.Content)
	assert.Equal(t, "C", *updated.Content, "content не должен меняться при обновлении только title")
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateNoteHandler_BothFieldsAbsent(t *testing.T) {
	router := newTestRouter(t)
	created := createNote(t, router, "T", nil)

	rr := doRequest(t, router, http.MethodPut, "/notes/"+itoa(created.ID), map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateNoteHandler_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPut, "/notes/12345", models.UpdateNoteRequest{Title: strPtr("T2")})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteNoteHandler(t *testing.T) {
	router := newTestRouter(t)
	created := createNote(t, router, "T", nil)

	rr := doRequest(t, router, http.MethodDelete, "/notes/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String(), "успешное удаление возвращает пустое тело")

	rr = doRequest(t, router, http.MethodGet, "/notes/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, router, http.MethodDelete, "/notes/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListNotesHandler(t *testing.T) {
	router := newTestRouter(t)

	noteA := createNote(t, router, "A", nil)
	noteB := createNote(t, router, "B", nil)

	rr := doRequest(t, router, http.MethodPut, "/notes/"+itoa(noteA.ID), models.UpdateNoteRequest{Content: strPtr("updated")})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/notes", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var notes []models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &notes))
	require.Len(t, notes, 2)
	assert.Equal(t, noteA.ID, notes[0].ID, "обновленная заметка должна быть первой")
	assert.Equal(t, noteB.ID, notes[1].ID)
}

func TestListNotesHandler_Pagination(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 3; i++ {
		createNote(t, router, "N", nil)
	}

	rr := doRequest(t, router, http.MethodGet, "/notes?limit=2", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var notes []models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &notes))
	assert.Len(t, notes, 2)

	rr = doRequest(t, router, http.MethodGet, "/notes?offset=10", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String(), "пустая страница сериализуется как [], а не null")
}

func TestListNotesHandler_BadParams(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/notes?offset=-1",
		"/notes?offset=abc",
		"/notes?limit=0",
		"/notes?limit=501",
		"/notes?limit=abc",
	} {
		rr := doRequest(t, router, http.MethodGet, path, nil)
		assert.Equalf(t, http.StatusBadRequest, rr.Code, "путь %s", path)
	}
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "Notes API", health.App)
	assert.Equal(t, "0.1.0", health.Version)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
