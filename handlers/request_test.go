package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hiredaily/models"
	"hiredaily/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string             `json:"code"`
		Message string             `json:"message"`
		Fields  []utils.FieldError `json:"fields"`
	} `json:"error"`
}

func bindBody(t *testing.T, body string, dst any) (bool, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return bindJSON(c, dst), w
}

func TestBindJSONReportsTypeMismatchOnField(t *testing.T) {
	tests := map[string]struct {
		body    string
		dst     any
		field   string
		message string
	}{
		"fractional score": {`{"score": 4.5}`, &models.RatingRequest{}, "score", "score must be an integer"},
		"quoted hours":     {`{"estimatedHours": "3"}`, &models.BookingRequest{}, "estimatedHours", "estimatedHours must be a number"},
		"nested zip code":  {`{"address": {"zipCode": 411001}}`, &models.BookingRequest{}, "address.zipCode", "address.zipCode must be a string"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ok, w := bindBody(t, tc.body, tc.dst)
			assert.False(t, ok)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp errorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, utils.CodeValidation, resp.Error.Code)
			assert.Equal(t, []utils.FieldError{{Field: tc.field, Message: tc.message}}, resp.Error.Fields)
		})
	}
}

func TestBindJSONMalformedBody(t *testing.T) {
	ok, w := bindBody(t, `{"score": `, &models.RatingRequest{})
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []utils.FieldError{{Field: "body", Message: "request body must be valid JSON"}}, resp.Error.Fields)
}

func TestBindJSONAcceptsValidBody(t *testing.T) {
	var req models.RatingRequest
	ok, _ := bindBody(t, `{"score": 5, "review": "great"}`, &req)
	assert.True(t, ok)
	assert.Equal(t, models.RatingRequest{Score: 5, Review: "great"}, req)
}
