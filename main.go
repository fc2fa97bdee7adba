package main

import (
	"log"
	"net/http"

	"notes_api_go/config"
	"notes_api_go/controllers"
	"notes_api_go/data"
	"notes_api_go/metrics"
	"notes_api_go/middleware"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter собирает маршрутизатор приложения с переданными настройками.
func NewRouter(settings *config.Settings) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)

	notesController := controllers.NewNotesController(settings)
	healthController := controllers.NewHealthController(settings)

	// Маршрут проверки состояния сервера
	router.HandleFunc("/", healthController.HealthCheck).Methods(http.MethodGet)

	// Метрики Prometheus
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Маршруты заметок
	// POST /notes - создать заметку, GET /notes - список с пагинацией
	// GET/PUT/DELETE /notes/{id} - операции над одной заметкой
	notesRouter := router.PathPrefix("/notes").Subrouter()
	notesRouter.HandleFunc("", notesController.CreateNoteHandler).Methods(http.MethodPost)
	notesRouter.HandleFunc("", notesController.ListNotesHandler).Methods(http.MethodGet)
	notesRouter.HandleFunc("/{id:[0-9]+}", notesController.GetNoteHandler).Methods(http.MethodGet)
	notesRouter.HandleFunc("/{id:[0-9]+}", notesController.UpdateNoteHandler).Methods(http.MethodPut)
	notesRouter.HandleFunc("/{id:[0-9]+}", notesController.DeleteNoteHandler).Methods(http.MethodDelete)

	return router
}

func main() {
	settings := config.Load()

	// Инициализация схемы БД: без нее сервер стартовать не может
	if err := data.InitSchema(settings.NotesDBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	metrics.Init()

	router := NewRouter(settings)

	// CORS: список origin берется из настроек, "*" разрешает все
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins(settings.CORSAllowOrigins()),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)(router)

	log.Printf("Запуск сервера %s v%s на порту :%s", settings.AppTitle, settings.AppVersion, settings.Port)
	if err := http.ListenAndServe(":"+settings.Port, corsHandler); err != nil {
		log.Fatal(err)
	}
}
