package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"notes_api_go/config"
	"notes_api_go/data"
	"notes_api_go/models"

	"github.com/gorilla/mux"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// NotesController обрабатывает HTTP-запросы к коллекции заметок.
// Подключение к БД открывается на каждый запрос и гарантированно
// закрывается через defer на всех путях выхода.
type NotesController struct {
	settings *config.Settings
}

// NewNotesController создает контроллер заметок с переданными настройками.
func NewNotesController(settings *config.Settings) *NotesController {
	return &NotesController{settings: settings}
}

// CreateNoteHandler обрабатывает POST /notes.
// Ожидает JSON-тело с обязательным title и необязательным content.
func (c *NotesController) CreateNoteHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
		return
	}
	defer r.Body.Close()

	// Валидация входных данных
	if strings.TrimSpace(req.Title) == "" {
		respondError(w, http.StatusBadRequest, "Заголовок заметки не может быть пустым.")
		return
	}

	db, err := data.Open(c.settings.NotesDBPath)
	if err != nil {
		log.Printf("CreateNoteHandler: ошибка открытия БД: %v", err)
		respondError(w, http.StatusInternalServerError, "Ошибка сервера при доступе к базе данных.")
		return
	}
	defer db.Close()

	note, err := data.CreateNote(db, req.Title, req.Content)
	if err != nil {
		log.Printf("CreateNoteHandler: %v", err)
		respondError(w, http.StatusInternalServerError, "Не удалось создать заметку.")
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

// ListNotesHandler обрабатывает GET /notes.
// Параметры запроса: offset (>= 0, по умолчанию 0) и limit (1..500, по умолчанию 100).
// Заметки возвращаются в порядке убывания времени обновления.
func (c *NotesController) ListNotesHandler(w http.ResponseWriter, r *http.Request) {
	offset, err := parseQueryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		respondError(w, http.StatusBadRequest, "Параметр offset должен быть целым числом >= 0.")
		return
	}
	limit, err := parseQueryInt(r, "limit", defaultListLimit)
	if err != nil || limit < 1 || limit > maxListLimit {
		respondError(w, http.StatusBadRequest, "Параметр limit должен быть целым числом от 1 до 500.")
		return
	}

	db, err := data.Open(c.settings.NotesDBPath)
	if err != nil {
		log.Printf("ListNotesHandler: ошибка открытия БД: %v", err)
		respondError(w, http.StatusInternalServerError, "Ошибка сервера при доступе к базе данных.")
		return
	}
	defer db.Close()

	notes, err := data.ListNotes(db, offset, limit)
	if err != nil {
		log.Printf("ListNotesHandler: %v", err)
		respondError(w, http.StatusInternalServerError, "Не удалось получить список заметок.")
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

// GetNoteHandler обрабатывает GET /notes/{id}.
func (c *NotesController) GetNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	db, err := data.Open(c.settings.NotesDBPath)
	if err != nil {
		log.Printf("GetNoteHandler: ошибка открытия БД: %v", err)
		respondError(w, http.StatusInternalServerError, "Ошибка сервера при доступе к базе данных.")
		return
	}
	defer db.Close()

	note, err := data.GetNoteByID(db, id)
	if err != nil {
		log.Printf("GetNoteHandler: %v", err)
		respondError(w, http.StatusInternalServerError, "Не удалось получить заметку.")
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Заметка не найдена.")
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// UpdateNoteHandler обрабатывает PUT /notes/{id}.
// Хотя бы одно из полей title/content должно присутствовать в теле запроса.
func (c *NotesController) UpdateNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	var req models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
		return
	}
	defer r.Body.Close()

	if req.Title == nil && req.Content == nil {
		respondError(w, http.StatusBadRequest, "Необходимо передать хотя бы одно из полей title или content.")
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		respondError(w, http.StatusBadRequest, "Заголовок заметки не может быть пустым.")
		return
	}

	db, err := data.Open(c.settings.NotesDBPath)
	if err != nil {
		log.Printf("UpdateNoteHandler: ошибка открытия БД: %v", err)
		respondError(w, http.StatusInternalServerError, "Ошибка сервера при доступе к базе данных.")
		return
	}
	defer db.Close()

	note, err := data.UpdateNote(db, id, req.Title, req.Content)
	if err != nil {
		log.Printf("UpdateNoteHandler: %v", err)
		respondError(w, http.StatusInternalServerError, "Не удалось обновить заметку.")
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Заметка не найдена.")
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// DeleteNoteHandler обрабатывает DELETE /notes/{id}.
// Успешное удаление возвращает 204 без тела.
func (c *NotesController) DeleteNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	db, err := data.Open(c.settings.NotesDBPath)
	if err != nil {
		log.Printf("DeleteNoteHandler: ошибка открытия БД: %v", err)
		respondError(w, http.StatusInternalServerError, "Ошибка сервера при доступе к базе данных.")
		return
	}
	defer db.Close()

	deleted, err := data.DeleteNote(db, id)
	if err != nil {
		log.Printf("DeleteNoteHandler: %v", err)
		respondError(w, http.StatusInternalServerError, "Не удалось удалить заметку.")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Заметка не найдена.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseNoteID извлекает ID заметки из пути запроса.
// При некорректном ID сам пишет ответ 400 и возвращает ok=false.
func parseNoteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, "Неверный ID заметки: "+idStr)
		return 0, false
	}
	return id, true
}

// parseQueryInt читает целочисленный параметр запроса с значением по умолчанию.
func parseQueryInt(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}
