package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Message writes an error or status response of the form {"message": ...}
func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]string{
		"message": message,
	})
}

// OK writes a 200 response with {"ok": true}
func OK(w http.ResponseWriter) {
	JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Created writes a 201 response with the created resource as the body
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

// NoContent writes a no content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ReviewList writes the admin review listing page
func ReviewList(w http.ResponseWriter, reviews interface{}, total, page, limit int) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}
