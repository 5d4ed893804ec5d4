// Package validation adapts go-playground validator failures into the API's
// error contract: a 400 body naming the first failing field with a
// human-readable reason.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report fields by their JSON names, not Go struct names.
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

// FirstError returns the first failing field and a message for it. For
// non-validator errors (malformed JSON and the like) the field is empty and
// the raw error text is the message.
func FirstError(err error) (field, message string) {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "", err.Error()
	}
	fe := verrs[0]

	// Namespace is like "createOrderInput.items[0].quantity"; drop the
	// top-level struct name.
	field = fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		message = fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			message = fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		} else {
			message = fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
	case "gte":
		message = fmt.Sprintf("%s must be %s or greater", field, fe.Param())
	case "oneof":
		message = fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "email":
		message = fmt.Sprintf("%s must be a valid email address", field)
	default:
		message = fmt.Sprintf("%s is invalid", field)
	}
	return field, message
}
