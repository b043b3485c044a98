package cfb

import "errors"

var (
	ErrValidation    = errors.New("cfb: validation failed")
	ErrNotStorage    = errors.New("cfb: entry is not a storage")
	ErrCapacity      = errors.New("cfb: allocation table capacity exceeded")
	ErrContentSize   = errors.New("cfb: stream content length mismatch")
	ErrLimitExceeded = errors.New("cfb: limit exceeded")
)
