package tui

import "errors"

var (
	errAmountRequired     = errors.New("amount must be a positive number")
	errBillFieldsRequired = errors.New("flat id and month are required")
	errFlatIDRequired     = errors.New("flat id is required")
	errUnknownForm        = errors.New("unknown form")
)
