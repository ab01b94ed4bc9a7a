package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"tourpay/internal/domain/payment"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var registerOnce sync.Once

// Register installs the custom tags on gin's binding validator. Safe to call more than once.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding validator is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		if err = v.RegisterValidation("rail", validateRail); err != nil {
			return
		}
		err = v.RegisterValidation("txref", validateTxRef)
	})
	return err
}

// jsonFieldName reports fields under their wire names.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func validateRail(fl validator.FieldLevel) bool {
	_, err := payment.ParseRail(fl.Field().String())
	return err == nil
}

// validateTxRef only rejects what no rail accepts; the rail-specific shape is checked when
// the claim is built.
func validateTxRef(fl validator.FieldLevel) bool {
	ref := strings.TrimSpace(fl.Field().String())
	if ref == "" || len(ref) > payment.MaxReferenceLength {
		return false
	}
	for _, r := range ref {
		if r <= ' ' || r > '~' {
			return false
		}
	}
	return true
}

// Details turns binding failures into per-field messages for the error response.
func Details(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "rail":
		return fmt.Sprintf("unknown rail %q", fe.Value())
	case "txref":
		return "is not a valid transaction reference"
	case "email":
		return "must be a valid email address"
	case "gt", "min":
		return "must be greater than " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}
