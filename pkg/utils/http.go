package utils

import (
	"encoding/json"
	"io"
	"net/http"
)

// вебхуки витрины не бывают больше мегабайта
const maxBodyBytes = 1 << 20

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

// WriteEmpty ответ без тела, например на preflight
func WriteEmpty(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
}

// DecodeBody читает не больше maxBodyBytes, обрезанное тело не декодируется
func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
}

// ErrorResponse describes a standard error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Error: message}, code)
}
