package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAppErrorIsSurvivesWrap(t *testing.T) {
	sentinel := NewConflict("ALREADY_RATED", "Booking already rated")
	wrapped := fmt.Errorf("rate: %w", sentinel.Wrap(errors.New("no match")))

	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, wrapped, NewConflict("ALREADY_PAID", "Booking already paid"))
	assert.NotErrorIs(t, NewNotFound("Worker"), NewNotFound("Booking"))
}

func serve(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, ErrorBody) {
	t.Helper()
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/x", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespondError(t *testing.T) {
	t.Run("app error keeps its status", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) {
			RespondError(c, NewValidationError([]FieldError{{Field: "score", Message: "score is required"}}))
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeValidation, body.Error.Code)
		assert.Len(t, body.Error.Fields, 1)
	})

	t.Run("unknown errors stay opaque", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) {
			RespondError(c, errors.New("E11000 duplicate key error collection: secret.db"))
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, CodeInternal, body.Error.Code)
		assert.NotContains(t, w.Body.String(), "E11000")
	})

	t.Run("panics become 500", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) {
			panic("boom")
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Server error", body.Error.Message)
	})
}
