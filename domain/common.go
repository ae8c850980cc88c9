package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedTokenInvalid   = "webhook token invalid"

	ErrInvalidWebhookSecret = errors.New("webhook secret token mismatch")
	ErrParseUserID          = errors.New("failed to parse user id")
)
