package models

import "time"

// Note представляет собой заметку в системе.
type Note struct {
	ID        int64     `json:"id" db:"Id"`
	Title     string    `json:"title" db:"Title"`
	Content   *string   `json:"content" db:"Content"` // NULL, если содержимое не задано
	CreatedAt time.Time `json:"created_at" db:"CreatedAt"`
	UpdatedAt time.Time `json:"updated_at" db:"UpdatedAt"`
}

// CreateNoteRequest - тело запроса на создание заметки.
type CreateNoteRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

// UpdateNoteRequest - тело запроса на обновление заметки.
// Указатели отличают отсутствующее поле от пустого значения.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// HealthResponse - ответ проверки состояния сервера.
type HealthResponse struct {
	Status  string `json:"status"`
	App     string `json:"app"`
	Version string `json:"version"`
}
