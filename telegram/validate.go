package telegram

import "telegramapis/internal/adapters/validator"

// WithStructValidation checks options, media items and bot commands against their validate tags before
// anything is sent. Validation errors are returned as validator.ValidationErrors.
func WithStructValidation() Option {
	return WithValidator(validator.New())
}
