package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorDetail describe un campo que falló la validación y la regla violada.
type ErrorDetail struct {
	Field string
	Tag   string
	Param string
}

var validate = validator.New()

// ValidateStruct valida un struct según sus tags `validate`. Devuelve nil
// si todo pasa.
func ValidateStruct(data any) []ErrorDetail {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var details []ErrorDetail
	for _, fe := range err.(validator.ValidationErrors) {
		details = append(details, ErrorDetail{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return details
}

// Describe arma un mensaje legible a partir de los detalles de validación,
// para devolverlo en el cuerpo de error.
func Describe(details []ErrorDetail) string {
	if len(details) == 0 {
		return ""
	}
	parts := make([]string, 0, len(details))
	for _, d := range details {
		parts = append(parts, fmt.Sprintf("%s (%s)", d.Field, d.Tag))
	}
	return "campos inválidos: " + strings.Join(parts, ", ")
}
