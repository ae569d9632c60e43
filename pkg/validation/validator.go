package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding to report
// field names from JSON tags instead of Go struct fields.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// ToMessage converts a binding error into a single human-readable message
// for the `{message}` error body.
func ToMessage(err error) string {
	if err == nil {
		return ""
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return "Invalid JSON payload"
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "email":
			return fe.Field() + " must be a valid email"
		case "oneof":
			return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
		case "min":
			return fe.Field() + " must be at least " + fe.Param() + " characters long"
		case "max":
			return fe.Field() + " must be at most " + fe.Param() + " characters long"
		default:
			return fe.Field() + " is invalid"
		}
	}

	return "Invalid payload"
}
