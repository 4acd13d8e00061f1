// SPDX-License-Identifier: EPL-2.0

package ucra

import (
	"errors"
	"fmt"
)

// Sentinel errors for the defined ABI result codes, plus wrapper-level
// conditions the ABI has no code for.
var (
	ErrInvalidArgument = errors.New("ucra: invalid argument")
	ErrOutOfMemory     = errors.New("ucra: out of memory")
	ErrNotSupported    = errors.New("ucra: not supported")
	ErrInternal        = errors.New("ucra: internal error")
	ErrFileNotFound    = errors.New("ucra: file not found")
	ErrInvalidJSON     = errors.New("ucra: invalid json")
	ErrInvalidManifest = errors.New("ucra: invalid manifest")

	// ErrClosed is returned by operations on an Engine after Close.
	ErrClosed = errors.New("ucra: engine closed")

	// ErrCurveLengthMismatch is returned by NewCurve when the time and
	// value sequences differ in length.
	ErrCurveLengthMismatch = errors.New("ucra: curve time and value lengths differ")
)

// UnknownCodeError is returned when the engine reports a result code outside
// the defined set. Code holds the raw value for diagnostics.
type UnknownCodeError struct {
	Code int32
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("ucra: unknown result code %d", e.Code)
}

// errFromCode translates an ABI result code into a Go error.
// Code 0 means success and translates to nil; every other value maps to a
// sentinel error or, for codes outside the defined set, *UnknownCodeError.
func errFromCode(code int32) error {
	switch code {
	case 0:
		return nil
	case 1:
		return ErrInvalidArgument
	case 2:
		return ErrOutOfMemory
	case 3:
		return ErrNotSupported
	case 4:
		return ErrInternal
	case 5:
		return ErrFileNotFound
	case 6:
		return ErrInvalidJSON
	case 7:
		return ErrInvalidManifest
	default:
		return &UnknownCodeError{Code: code}
	}
}
