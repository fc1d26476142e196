package validator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance to avoid creating multiple instances
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Get returns the shared validator instance
func Get() *validator.Validate {
	return validate
}

// fieldNames maps struct fields to their wire names
var fieldNames = map[string]string{
	"ProductID": "productId",
	"Nickname":  "nickname",
	"Rating":    "rating",
	"Title":     "title",
	"Comment":   "comment",
}

// Problems renders a validation error into one human-readable message per
// failed field. Unknown errors yield a single generic message.
func Problems(err error) []string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{"invalid request"}
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		name := fieldNames[fe.StructField()]
		if name == "" {
			name = fe.Field()
		}

		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", name))
		case "min":
			if fe.Kind() == reflect.String {
				problems = append(problems, fmt.Sprintf("%s must be at least %s characters", name, fe.Param()))
			} else {
				problems = append(problems, fmt.Sprintf("%s must be at least %s", name, fe.Param()))
			}
		case "max":
			if fe.Kind() == reflect.String {
				problems = append(problems, fmt.Sprintf("%s must be at most %s characters", name, fe.Param()))
			} else {
				problems = append(problems, fmt.Sprintf("%s must be at most %s", name, fe.Param()))
			}
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid", name))
		}
	}

	return problems
}
