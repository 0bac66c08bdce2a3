package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

const msgInternalError = "внутренняя ошибка сервера"

// Сообщения о пересечении показываются конечному пользователю как есть
const (
	MsgReservationConflict = "Ce véhicule est déjà réservé pour cette période."
	MsgMaintenanceConflict = "Ce véhicule est en maintenance durant cette période."
)

var (
	// ErrEmptyBody возвращается для запроса без тела
	ErrEmptyBody = errors.New("handlers: empty request body")

	// ErrInvalidID возвращается, если path параметр не является UUID
	ErrInvalidID = errors.New("handlers: invalid id")
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error    string `json:"error"`
	Conflict string `json:"conflict,omitempty"`
}

// MessageResponse тело ответа с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// DecodeJSON декодирует тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(dst)
}

// PathUUID извлекает UUID из переменной маршрута
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(mux.Vars(r)[name])
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

// dateTimeLayouts форматы дат, которые присылает фронтенд и форма автосервиса
var dateTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04", domain.DateFormat}

// ParseDateTime разбирает дату в одном из поддерживаемых форматов
func ParseDateTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(s))
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ParseOptionalDateTime пустая строка или nil означают отсутствие даты
func ParseOptionalDateTime(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDateTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку с произвольным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondGone(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusGone, message)
}

func RespondUnprocessable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnprocessableEntity, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondConflict отправляет 409 с видом пересечения
func RespondConflict(w http.ResponseWriter, kind domain.ConflictKind) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{
		Error:    ConflictMessage(kind),
		Conflict: string(kind),
	})
}

// ConflictMessage текст ошибки для вида пересечения
func ConflictMessage(kind domain.ConflictKind) string {
	if kind == domain.ConflictMaintenance {
		return MsgMaintenanceConflict
	}
	return MsgReservationConflict
}
