package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

func TestRespondConflict(t *testing.T) {
	tests := []struct {
		kind    domain.ConflictKind
		message string
	}{
		{kind: domain.ConflictReservation, message: "Ce véhicule est déjà réservé pour cette période."},
		{kind: domain.ConflictMaintenance, message: "Ce véhicule est en maintenance durant cette période."},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			rec := httptest.NewRecorder()

			RespondConflict(rec, tt.kind)

			assert.Equal(t, http.StatusConflict, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Error)
			assert.Equal(t, string(tt.kind), body.Conflict)
		})
	}
}

func TestRespondError_OmitsConflict(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "не найдено")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"не найдено"}`, rec.Body.String())
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2024-07-01", want: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2024-07-01T09:30", want: time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)},
		{in: "2024-07-01T09:30:00Z", want: time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDateTime(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}

	_, err := ParseDateTime("01/07/2024")
	assert.Error(t, err)
}

func TestParseOptionalDateTime_Empty(t *testing.T) {
	empty := " "

	got, err := ParseOptionalDateTime(&empty)

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPathUUID(t *testing.T) {
	id := uuid.New()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": id.String()})

	got, err := PathUUID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	_, err = PathUUID(req, "id")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	var dst map[string]interface{}
	assert.ErrorIs(t, DecodeJSON(req, &dst), ErrEmptyBody)
}
