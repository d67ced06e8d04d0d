// Package config provides configuration management for the Prop Scout application.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	// Register custom validation functions
	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	// Additional cross-field validations
	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	env := fl.Field().String()
	switch env {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateCrossField performs validations spanning multiple config sections
func validateCrossField(cfg *Config) error {
	if !cfg.Books.IsSoft(cfg.Books.PrimarySoftBook) {
		return fmt.Errorf("primary_soft_book %q must be listed in books.soft_books", cfg.Books.PrimarySoftBook)
	}

	if cfg.Books.IsSoft(cfg.Books.GoldStandardBook) {
		return fmt.Errorf("gold_standard_book %q cannot be a soft book", cfg.Books.GoldStandardBook)
	}

	for market, rule := range cfg.Engine.Markets {
		if rule.AltLineTolerance <= 0 {
			return fmt.Errorf("market %q: alt_line_tolerance must be positive", market)
		}
		if rule.ProbMultiplier <= 0 {
			return fmt.Errorf("market %q: prob_multiplier must be positive", market)
		}
	}

	for _, market := range cfg.Scanner.Markets {
		if strings.TrimSpace(market) == "" {
			return fmt.Errorf("scanner.markets contains an empty market key")
		}
	}

	return nil
}

// formatValidationErrors converts validator errors into a readable message
func formatValidationErrors(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		messages = append(messages, fmt.Sprintf("%s failed on %q", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
