package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/workout-api/internal/domain/entities"
	"github.com/rafabene/workout-api/internal/domain/valueobjects"
)

// RegisterValidators registra as regras "cpf" e "sexo" no validator do gin e
// faz os erros usarem o nome JSON dos campos.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("cpf", validateCPF); err != nil {
		return fmt.Errorf("failed to register cpf validator: %w", err)
	}
	if err := v.RegisterValidation("sexo", validateSex); err != nil {
		return fmt.Errorf("failed to register sexo validator: %w", err)
	}

	return nil
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

func validateCPF(fl validator.FieldLevel) bool {
	return valueobjects.IsValidCPF(fl.Field().String())
}

func validateSex(fl validator.FieldLevel) bool {
	return entities.Sex(fl.Field().String()).IsValid()
}

// ValidationErrors converte erros de binding em erros de campo traduzidos
func ValidationErrors(c *gin.Context, err error) []ValidationError {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		result := make([]ValidationError, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			result = append(result, ValidationError{
				Field:   fieldPath(fe),
				Message: validationMessage(c, fe),
				Tag:     fe.Tag(),
				Value:   fmt.Sprint(fe.Value()),
			})
		}
		return result
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []ValidationError{{
			Field:   typeErr.Field,
			Message: T(c, "validation.type", map[string]interface{}{"Type": typeErr.Type.String()}),
			Tag:     "type",
			Value:   typeErr.Value,
		}}
	}

	if errors.Is(err, io.EOF) {
		return []ValidationError{{Field: "body", Message: T(c, "validation.empty_body"), Tag: "required"}}
	}

	return []ValidationError{{Field: "body", Message: err.Error(), Tag: "format"}}
}

// fieldPath remove o nome da struct raiz: "CreateAthleteRequest.categoria.nome" -> "categoria.nome"
func fieldPath(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if idx := strings.Index(namespace, "."); idx != -1 {
		return namespace[idx+1:]
	}
	return fe.Field()
}

func validationMessage(c *gin.Context, fe validator.FieldError) string {
	key := "validation." + fe.Tag()
	message := T(c, key, map[string]interface{}{
		"Field": fe.Field(),
		"Param": fe.Param(),
	})
	if message == key {
		return fe.Error()
	}
	return message
}
