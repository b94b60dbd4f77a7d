package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"planfit/pkg/logger"
	"planfit/pkg/model"
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

type SchedulingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
	now      func() time.Time
}

func NewSchedulingValidator(log *logger.Logger) *SchedulingValidator {
	return &SchedulingValidator{
		validate: validator.New(),
		logger:   log,
		now:      time.Now,
	}
}

func (v *SchedulingValidator) ValidateSuggest(req *model.SuggestRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return v.validateSlots(req.Slots)
}

func (v *SchedulingValidator) ValidateCommit(req *model.CommitRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return v.validateSlots(req.Slots)
}

func (v *SchedulingValidator) validateSlots(slots []model.TimeSlot) error {
	var errs ValidationErrors
	now := v.now()
	for i, slot := range slots {
		if !slot.End.After(slot.Start) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("slots[%d]", i),
				Message: "end must be after start",
			})
			continue
		}
		if slot.Start.Before(now) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("slots[%d]", i),
				Message: "start cannot be in the past",
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *SchedulingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must have at least %s element(s)", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must have at most %s element(s)", err.Field(), err.Param())
		case "uuid4":
			message = fmt.Sprintf("%s must be a valid UUID", err.Field())
		case "gtfield":
			message = fmt.Sprintf("%s must be after %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
