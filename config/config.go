package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Settings содержит настройки приложения, прочитанные из переменных окружения.
type Settings struct {
	AppTitle       string
	AppDescription string
	AppVersion     string
	// CORSAllowOriginsRaw - список разрешенных origin через запятую, либо "*".
	CORSAllowOriginsRaw string
	// NotesDBPath - путь к файлу SQLite. Значение ":memory:" дает эфемерную БД.
	NotesDBPath string
	Port        string
}

// Load читает настройки из переменных окружения (и из .env, если он есть).
// Отсутствующие переменные молча заменяются значениями по умолчанию.
func Load() *Settings {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	return &Settings{
		AppTitle:            getEnv("APP_TITLE", "Notes API"),
		AppDescription:      getEnv("APP_DESCRIPTION", "A simple backend for managing notes (create, list, fetch, update, delete)."),
		AppVersion:          getEnv("APP_VERSION", "0.1.0"),
		CORSAllowOriginsRaw: getEnv("CORS_ALLOW_ORIGINS", "*"),
		NotesDBPath:         getEnv("NOTES_DB_PATH", "notes.db"),
		Port:                getEnv("APP_PORT", "8080"),
	}
}

// CORSAllowOrigins возвращает список разрешенных origin.
// Пустая строка или "*" трактуются как "разрешить все".
func (s *Settings) CORSAllowOrigins() []string {
	raw := strings.TrimSpace(s.CORSAllowOriginsRaw)
	if raw == "" || raw == "*" {
		return []string{"*"}
	}

	origins := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
