package service

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/salatchecker/internal/error_values"
)

const (
	DateLayout = "2006-01-02"
	// bcrypt rejects longer inputs
	maxPasswordBytes = 72
)

var (
	phoneRegexp = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	dateRegexp  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// International format: '+', country code, up to 15 digits total
		validate.RegisterValidation("intl_phone", func(fl validator.FieldLevel) bool {
			return phoneRegexp.MatchString(fl.Field().String())
		})
		validate.RegisterValidation("bcrypt_len", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= maxPasswordBytes
		})
		validate.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
			return ValidateDate(fl.Field().String()) == nil
		})
	})
}

// ValidateDate accepts only YYYY-MM-DD strings naming a real calendar day.
func ValidateDate(date string) error {
	if !dateRegexp.MatchString(date) {
		return errorvalues.ErrInvalidDate
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return errorvalues.ErrInvalidDate
	}
	return nil
}

func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.New("validation unexpected error: " + err.Error())
	}
	// first failed field is enough for the client
	return fmt.Errorf("%w: %s", errorvalues.ErrValidation, describeFieldError(validationErrors[0]))
}

func describeFieldError(fe validator.FieldError) string {
	field := jsonFieldNames[fe.Field()]
	if field == "" {
		field = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "intl_phone":
		return "invalid phone number format, must include country code (e.g. +212)"
	case "bcrypt_len":
		return fmt.Sprintf("%s must be at most %d bytes", field, maxPasswordBytes)
	case "calendar_date":
		return errorvalues.ErrInvalidDate.Error()
	}
	return fmt.Sprintf("%s failed on %s", field, fe.Tag())
}

var jsonFieldNames = map[string]string{
	"Username":    "username",
	"PhoneNumber": "phoneNumber",
	"Password":    "password",
	"Start":       "startDate",
	"End":         "endDate",
}
