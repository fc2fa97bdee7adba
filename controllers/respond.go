package controllers

import (
	"encoding/json"
	"log"
	"net/http"
)

// respondJSON сериализует payload в JSON и отправляет его с указанным статусом.
func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Ошибка кодирования JSON ответа: %v", err)
		}
	}
}

// respondError отправляет JSON с сообщением об ошибке в поле "detail".
func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"detail": message})
}
