package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"driveway/pkg/logger"
	"driveway/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type ListingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewListingValidator(log *logger.Logger) *ListingValidator {
	v := validator.New()

	if err := v.RegisterValidation("valid_clock_time", validateClockTime); err != nil {
		log.Fatal("Failed to register 'valid_clock_time' validator", "error", err)
	}
	if err := v.RegisterValidation("valid_week_days", validateWeekDays); err != nil {
		log.Fatal("Failed to register 'valid_week_days' validator", "error", err)
	}

	log.Info("Listing validator initialized successfully")

	return &ListingValidator{
		validate: v,
		logger:   log,
	}
}

func validateClockTime(fl validator.FieldLevel) bool {
	clock := strings.TrimSpace(fl.Field().String())

	if clock == "" {
		return true
	}

	if _, err := time.Parse("15:04", clock); err != nil {
		return false
	}

	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%02d:%02d", &hour, &minute); err != nil {
		return false
	}
	if hour < 0 || hour > 23 {
		return false
	}
	if minute < 0 || minute > 59 {
		return false
	}

	return true
}

func validateWeekDays(fl validator.FieldLevel) bool {
	days, ok := fl.Field().Interface().([]int)
	if !ok || len(days) == 0 {
		return false
	}

	for _, d := range days {
		if d < 0 || d > 6 {
			return false
		}
	}
	return true
}

func (v *ListingValidator) Validate(l *model.Listing) error {
	if err := v.validate.Struct(l); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if err := v.validateAvailabilityWindow(l); err != nil {
		return err
	}

	return nil
}

// validateAvailabilityWindow enforces open_time < close_time. Both fields
// are already known to parse as HH:MM, so string comparison is sufficient.
func (v *ListingValidator) validateAvailabilityWindow(l *model.Listing) error {
	if l.OpenTime >= l.CloseTime {
		return ValidationErrors{{
			Field:   "OpenTime",
			Message: "open_time must be before close_time",
		}}
	}
	return nil
}

func (v *ListingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "e164":
			message = fmt.Sprintf("%s must be a valid E.164 phone number", err.Field())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", err.Field())
		case "timezone":
			message = fmt.Sprintf("%s must be a valid IANA timezone", err.Field())
		case "valid_clock_time":
			message = fmt.Sprintf("%s must be in HH:MM 24-hour format", err.Field())
		case "valid_week_days":
			message = fmt.Sprintf("%s must contain only weekday indices 0 (Sunday) through 6 (Saturday)", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
