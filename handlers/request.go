package handlers

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"

	"hiredaily/middleware"
	"hiredaily/models"
	"hiredaily/utils"

	"github.com/gin-gonic/gin"
)

var errMalformedBody = utils.NewValidationError([]utils.FieldError{
	{Field: "body", Message: "request body must be valid JSON"},
})

// bindJSON decodes the body. Field rules are enforced by the services; a
// value of the wrong JSON type is reported against its field.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			utils.RespondError(c, utils.NewValidationError([]utils.FieldError{
				{Field: typeErr.Field, Message: typeErr.Field + " must be " + jsonTypeName(typeErr.Type)},
			}).Wrap(err))
			return false
		}
		utils.RespondError(c, errMalformedBody.Wrap(err))
		return false
	}
	return true
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	}
	return "of type " + t.String()
}

// principal fetches the caller set by the auth middleware.
func principal(c *gin.Context) (*models.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.RespondError(c, utils.ErrUnauthorized)
	}
	return p, ok
}

// pageQuery reads page and limit; bad values fall back to the defaults.
func pageQuery(c *gin.Context) models.Page {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return models.Page{Page: page, Limit: limit}.Normalize()
}

// floatQuery returns nil when the parameter is absent or not a number.
func floatQuery(c *gin.Context, key string) *float64 {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
