package core

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidSymbol = errors.New("invalid symbol")

	ErrInvalidPlan      = errors.New("invalid plan")
	ErrResultNotFound   = errors.New("result not found")
	ErrInvalidResult    = errors.New("invalid result name")
	ErrVerificationFail = errors.New("special search disagrees with brute force")
)
