package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// WriteJSON marshals data and writes it with statusCode and an
// application/json content type.
//
// Marshaling happens before any header is written, so a marshal failure is
// still reported to the client as a plain 500. The returned int is the
// number of body bytes written.
//
//	utils.WriteJSON(w, models.ErrorResponse{Error: "InvalidInput"}, http.StatusBadRequest)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return write(w, contentTypeJSON, body, statusCode)
}

// WriteText writes s as a UTF-8 plain text body.
func WriteText(w http.ResponseWriter, s string, statusCode int) (int, error) {
	return write(w, contentTypeText, []byte(s), statusCode)
}

func write(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
