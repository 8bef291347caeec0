package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ParthibanSekar/snaptravels/middlewares"
)

// bindingErrors turns a gin binding failure into a field-error list so the
// client can render inline messages.
func bindingErrors(err error) []gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, gin.H{
				"field":   fieldName(fe),
				"message": fieldMessage(fe),
			})
		}
		return out
	}
	return []gin.H{{"message": err.Error()}}
}

func fieldName(fe validator.FieldError) string {
	// Namespace looks like "FlightSearchRequest.From"; drop the struct prefix
	// and lower-case the first letter to match the JSON contract.
	name := fe.Field()
	if name == "" {
		return ""
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	case "uuid":
		return "must be a valid id"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// dayWindow returns [date 00:00, date+1 00:00) in UTC for a YYYY-MM-DD input.
func dayWindow(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return day, day.AddDate(0, 0, 1), nil
}

// parseDate accepts either a bare calendar day or a full RFC 3339 timestamp,
// matching what the booking endpoints receive from clients.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// like builds a case-insensitive substring pattern; queries compare against
// LOWER(column) so the same SQL runs on Postgres and the test database.
func like(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

func currentUserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get(middlewares.ContextUserID)
	if !exists {
		return "", false
	}
	id, ok := raw.(string)
	return id, ok && id != ""
}
