package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"hiredaily/models"

	"github.com/go-playground/validator/v10"
)

var (
	hhmmPattern  = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)

	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the domain tags registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		mustRegister(v, "hhmm", func(fl validator.FieldLevel) bool {
			return IsTimeOfDay(fl.Field().String())
		})
		mustRegister(v, "phone10", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "skill", func(fl validator.FieldLevel) bool {
			return models.IsSkill(fl.Field().String())
		})
		mustRegister(v, "servicetype", func(fl validator.FieldLevel) bool {
			return models.IsServiceType(fl.Field().String())
		})
		mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
			_, ok := models.ParseScheduledDate(fl.Field().String())
			return ok
		})
		mustRegister(v, "futuredate", func(fl validator.FieldLevel) bool {
			t, ok := models.ParseScheduledDate(fl.Field().String())
			return ok && t.After(time.Now())
		})
		mustRegister(v, "weekday", func(fl validator.FieldLevel) bool {
			return slices.Contains(models.Weekdays, fl.Field().String())
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// IsTimeOfDay reports whether s is a 24-hour "HH:MM" string.
func IsTimeOfDay(s string) bool {
	return hhmmPattern.MatchString(s)
}

// ValidateStruct runs the struct tags of v and returns every violation as a
// single validation AppError, or nil.
func ValidateStruct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewInternal(err)
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
	}
	return NewValidationError(fields)
}

// fieldPath drops the root struct name: "WorkerRegistration.location.city" -> "location.city".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "Please provide a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot be more than %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
	case "phone10":
		return "Please provide a valid 10-digit phone number"
	case "hhmm":
		return "Please provide a valid time format (HH:MM)"
	case "skill":
		return fmt.Sprintf("%s must be one of: %s", field, joinSkills())
	case "servicetype":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(models.ServiceTypes, ", "))
	case "isodate":
		return field + " must be a valid date"
	case "futuredate":
		return field + " must be in the future"
	case "weekday":
		return fmt.Sprintf("%s must be a weekday name", field)
	}
	return field + " is invalid"
}

func joinSkills() string {
	names := make([]string, len(models.Skills))
	for i, s := range models.Skills {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
