package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"resource-planner-backend/internal/calendar"
	apperrors "resource-planner-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their JSON name.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationFailed converts a validator error into an apperrors.ValidationError
// naming the first offending field.
func validationFailed(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		return apperrors.NewValidationError(fe.Field(), msg)
	}
	return apperrors.NewValidationError("", err.Error())
}

func parseDate(field, value string) (time.Time, error) {
	d, err := calendar.ParseDate(value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, err.Error())
	}
	return d, nil
}

// parseWindow parses an inclusive date window and rejects inverted ones.
func parseWindow(start, end string) (calendar.Range, error) {
	s, err := parseDate("start_date", start)
	if err != nil {
		return calendar.Range{}, err
	}
	e, err := parseDate("end_date", end)
	if err != nil {
		return calendar.Range{}, err
	}
	window := calendar.NewRange(s, e)
	if !window.Valid() {
		return calendar.Range{}, apperrors.ErrInvalidDateRange
	}
	return window, nil
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
