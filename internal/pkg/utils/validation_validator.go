package utils

import (
	"medibook-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(input interface{}) error {
	err := validate.Struct(input)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
