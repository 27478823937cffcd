package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"furniture-catalog/internal/apperrors"
	"furniture-catalog/internal/models"
)

// Validator valida los esquemas de entrada y traduce los fallos a apperrors.ValidationError.
type Validator struct {
	validate *validator.Validate
}

// New crea un Validator con las reglas propias del catálogo registradas.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Reportar los campos con su nombre JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.IsCategory(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct valida s y devuelve un *apperrors.ValidationError con todas las violaciones.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		fields = append(fields, apperrors.FieldError{
			Field:   field,
			Message: message(field, fe),
		})
	}
	return &apperrors.ValidationError{Fields: fields}
}

// fieldPath quita el nombre del struct raíz: "ProductInput.images[0].url" -> "images[0].url".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(field string, fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		if isString {
			return fmt.Sprintf("%s cannot be more than %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("%s cannot be empty", field)
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s cannot be negative", field)
	case "category":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(models.Categories, ", "))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
}
