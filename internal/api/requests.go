// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// HTTP request validation structs with go-playground/validator tags. These
// validate form and query inputs before they reach the controller.
package api

import (
	"github.com/rutuja395/sentiment-pipelinev1/internal/validation"
)

// SelectLocationRequest represents the validated form body for
// POST /dashboard/location.
type SelectLocationRequest struct {
	LocationID string `validate:"required,min=1,max=200"`
}

// SwitchModeRequest represents the validated form body for
// POST /dashboard/mode.
type SwitchModeRequest struct {
	Mode string `validate:"required,oneof=explore chat"`
}

// ChatRequest represents the validated form body for POST /dashboard/chat.
// An empty query passes validation on purpose: empty input is the
// controller's silent no-op, not a client error.
type ChatRequest struct {
	Query string `validate:"max=2000"`
}

// ReviewFilterRequest represents the validated query parameters for
// GET /dashboard/reviews. Rating is kept as the raw string so "absent" and
// "present but invalid" are distinguishable.
type ReviewFilterRequest struct {
	Rating    string `validate:"omitempty,oneof=1 2 3 4 5"`
	Sentiment string `validate:"omitempty,oneof=positive negative neutral"`
}

// validateRequest validates a request struct, returning the API error to
// respond with or nil when valid.
func validateRequest(v interface{}) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}
