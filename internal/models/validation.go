package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm/schema"
)

var validate = newValidator()

// columnNames derives snake_case names the same way gorm names columns
var columnNames = schema.NamingStrategy{}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	RegisterJSONFieldNames(v)
	// price is registered once here so the same rule backs every caller
	err := v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		price := fl.Field().Float()
		return price >= MinPrice && price <= MaxPrice
	})
	if err != nil {
		panic(fmt.Sprintf("register price validation: %v", err))
	}
	return v
}

// RegisterJSONFieldNames makes a validator report fields by their snake_case
// name so messages match what API clients send
func RegisterJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]; name != "" && name != "-" {
			return name
		}
		return columnNames.ColumnName("", field.Name)
	})
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		return ValidationErrorFromFields(fieldErrors)
	}
	return err
}

// ValidationErrorFromFields turns validator field errors into a *ValidationError
// with one readable message per field
func ValidationErrorFromFields(fieldErrors validator.ValidationErrors) *ValidationError {
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return NewValidationError(messages...)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "price":
		return fmt.Sprintf("%s must be between %d and %d", field, MinPrice, MaxPrice)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must not exceed %s", field, fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", field, fe.Tag())
	}
}
