package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/manisharan-deep/study-planner/internal/models"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for enums
	if err := Validate.RegisterValidation("task_category", validateTaskCategory); err != nil {
		panic(fmt.Sprintf("failed to register task_category validator: %v", err))
	}
	if err := Validate.RegisterValidation("task_priority", validateTaskPriority); err != nil {
		panic(fmt.Sprintf("failed to register task_priority validator: %v", err))
	}
	if err := Validate.RegisterValidation("recurrence_pattern", validateRecurrencePattern); err != nil {
		panic(fmt.Sprintf("failed to register recurrence_pattern validator: %v", err))
	}
	if err := Validate.RegisterValidation("habit_frequency", validateHabitFrequency); err != nil {
		panic(fmt.Sprintf("failed to register habit_frequency validator: %v", err))
	}
}

func validateTaskCategory(fl validator.FieldLevel) bool {
	return ValidateTaskCategory(fl.Field().String()) == nil
}

func validateTaskPriority(fl validator.FieldLevel) bool {
	return ValidateTaskPriority(fl.Field().String()) == nil
}

func validateRecurrencePattern(fl validator.FieldLevel) bool {
	return ValidateRecurrencePattern(fl.Field().String()) == nil
}

func validateHabitFrequency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch models.HabitFrequency(value) {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyWeekday:
		return true
	default:
		return false
	}
}

// SanitizeText trims whitespace and removes control characters (except
// newline and tab) from user input.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}
	return sanitized.String()
}

// ValidateTaskCategory validates a TaskCategory string value
func ValidateTaskCategory(value string) error {
	switch models.TaskCategory(value) {
	case models.CategoryMath, models.CategoryScience, models.CategoryHistory,
		models.CategoryLanguage, models.CategoryOther:
		return nil
	default:
		return fmt.Errorf("invalid category: %s (must be 'math', 'science', 'history', 'language', or 'other')", value)
	}
}

// ValidateTaskPriority validates a TaskPriority string value
func ValidateTaskPriority(value string) error {
	switch models.TaskPriority(value) {
	case models.PriorityUrgent, models.PriorityHigh, models.PriorityMedium,
		models.PriorityLow, models.PriorityOptional:
		return nil
	default:
		return fmt.Errorf("invalid priority: %s (must be 'urgent', 'high', 'medium', 'low', or 'optional')", value)
	}
}

// ValidateRecurrencePattern validates a RecurrencePattern string value
func ValidateRecurrencePattern(value string) error {
	switch models.RecurrencePattern(value) {
	case models.RecurDaily, models.RecurWeekly, models.RecurMonthly:
		return nil
	default:
		return fmt.Errorf("invalid recurrence pattern: %s (must be 'daily', 'weekly', or 'monthly')", value)
	}
}
