package data

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // Драйвер SQLite, импортируется для побочных эффектов (регистрации драйвера)
)

// Open открывает новое подключение к базе данных SQLite по указанному пути.
// Путь ":memory:" дает эфемерную БД, живущую в рамках одного подключения.
// Каждый вызов возвращает независимый handle; закрыть его обязан вызывающий.
func Open(dbPath string) (*sqlx.DB, error) {
	// Включаем внешние ключи и WAL-журнал на уровне DSN
	db, err := sqlx.Connect("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dbPath, err)
	}
	return db, nil
}

// InitSchema применяет схему таблицы Notes, если та еще не создана.
// Вызывается один раз при старте процесса; повторный вызов безопасен
// и не затрагивает существующие данные.
func InitSchema(dbPath string) error {
	db, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err = db.Exec(notesSchema); err != nil {
		return fmt.Errorf("failed to execute notes schema: %w", err)
	}
	log.Printf("Notes schema applied successfully (db: %s)", dbPath)
	return nil
}
