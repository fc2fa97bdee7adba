package data

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"notes_api_go/models"

	"github.com/jmoiron/sqlx"
)

// CreateNote создает новую заметку и возвращает сохраненную строку целиком.
// Оба timestamp устанавливаются в одно и то же текущее время UTC.
func CreateNote(db *sqlx.DB, title string, content *string) (*models.Note, error) {
	now := time.Now().UTC()

	result, err := db.Exec(
		`INSERT INTO Notes (Title, Content, CreatedAt, UpdatedAt) VALUES (?, ?, ?, ?)`,
		title, content, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("CreateNote: ошибка вставки заметки: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("CreateNote: ошибка получения LastInsertId: %w", err)
	}

	created, err := GetNoteByID(db, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		// Только что вставленная строка обязана существовать
		return nil, fmt.Errorf("CreateNote: заметка ID %d не найдена после вставки", id)
	}
	return created, nil
}

// GetNoteByID извлекает заметку по ее ID.
// Возвращает nil, nil, если заметки с таким ID нет.
func GetNoteByID(db *sqlx.DB, id int64) (*models.Note, error) {
	note := &models.Note{}
	query := `SELECT Id, Title, Content, CreatedAt, UpdatedAt FROM Notes WHERE Id = ?`
	err := db.Get(note, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Не найдено
		}
		return nil, fmt.Errorf("GetNoteByID: ошибка получения заметки ID %d: %w", id, err)
	}
	return note, nil
}

// ListNotes возвращает заметки, отсортированные по времени обновления (новые первыми),
// при равных UpdatedAt - по убыванию ID. offset и limit применяются как есть,
// верхнюю границу limit контролирует вызывающий слой.
func ListNotes(db *sqlx.DB, offset, limit int) ([]models.Note, error) {
	notes := make([]models.Note, 0)
	query := `SELECT Id, Title, Content, CreatedAt, UpdatedAt FROM Notes
	          ORDER BY UpdatedAt DESC, Id DESC LIMIT ? OFFSET ?`
	if err := db.Select(&notes, query, limit, offset); err != nil {
		return nil, fmt.Errorf("ListNotes: ошибка получения списка заметок: %w", err)
	}
	return notes, nil
}

// UpdateNote обновляет только переданные (не nil) поля заметки и всегда
// освежает UpdatedAt, даже если ни одно поле не передано.
// Нулевое число затронутых строк трактуется как "не найдено" (nil, nil);
// отдельная проверка существования не делается, чтобы исключить гонку
// с конкурентным удалением.
func UpdateNote(db *sqlx.DB, id int64, title, content *string) (*models.Note, error) {
	setClauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	if title != nil {
		setClauses = append(setClauses, "Title = ?")
		args = append(args, *title)
	}
	if content != nil {
		setClauses = append(setClauses, "Content = ?")
		args = append(args, *content)
	}
	setClauses = append(setClauses, "UpdatedAt = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE Notes SET %s WHERE Id = ?`, strings.Join(setClauses, ", "))
	result, err := db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("UpdateNote: ошибка обновления заметки ID %d: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return nil, nil // Не найдено для обновления
	}

	return GetNoteByID(db, id)
}

// DeleteNote удаляет заметку по ее ID. Возвращает true, если строка
// действительно была удалена, и false, если заметки с таким ID не было.
func DeleteNote(db *sqlx.DB, id int64) (bool, error) {
	result, err := db.Exec(`DELETE FROM Notes WHERE Id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("DeleteNote: ошибка удаления заметки ID %d: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}
