package usecase

import "errors"

// Task errors
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrAlreadyDone   = errors.New("task is already done")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrValidation    = errors.New("invalid task data")
)

// Ledger errors
var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInvalidAmount      = errors.New("amount cannot be negative")
)
