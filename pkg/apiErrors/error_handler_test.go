package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/session"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"fonte indisponível", domain.NewUnavailableError("csv", "missing", nil), ErrNoData},
		{"fonte malformada", domain.NewMalformedError("csv", "missing columns", nil), ErrSourceMalformed},
		{"sem dados", domain.ErrNoData, ErrNoData},
		{"kol inexistente", domain.ErrKolNotFound, ErrNotFound},
		{"sessão expirada", session.ErrExpiredSession, ErrInvalidSession},
		{"erro genérico", errors.New("boom"), ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeFor(tt.err))
		})
	}
}

func TestWriteFromError_DataLoadError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteFromError(rec, domain.NewUnavailableError("sheets", "credentials file not found", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrNoData, body.Code)
	assert.Contains(t, body.Message, "credentials file not found")
	assert.Equal(t, map[string]any{"source": "sheets", "kind": "source unavailable"}, body.Details)
}

func TestWriteError_UnknownCodeIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, "XYZ_999", "strange", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFromError_Nil(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil).Code)
}
