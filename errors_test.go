// SPDX-License-Identifier: EPL-2.0

package ucra

import (
	"errors"
	"testing"
)

func TestErrFromCode_DefinedCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code int32
		want error
	}{
		{0, nil},
		{1, ErrInvalidArgument},
		{2, ErrOutOfMemory},
		{3, ErrNotSupported},
		{4, ErrInternal},
		{5, ErrFileNotFound},
		{6, ErrInvalidJSON},
		{7, ErrInvalidManifest},
	}

	for _, tc := range cases {
		got := errFromCode(tc.code)
		if tc.want == nil {
			if got != nil {
				t.Errorf("errFromCode(%d) = %v, want nil", tc.code, got)
			}
			continue
		}
		if !errors.Is(got, tc.want) {
			t.Errorf("errFromCode(%d) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestErrFromCode_UnknownCodes(t *testing.T) {
	t.Parallel()

	for _, code := range []int32{8, 42, 255, -1, 1 << 30} {
		got := errFromCode(code)
		if got == nil {
			t.Fatalf("errFromCode(%d) = nil, want *UnknownCodeError", code)
		}

		var unknown *UnknownCodeError
		if !errors.As(got, &unknown) {
			t.Fatalf("errFromCode(%d) = %v, want *UnknownCodeError", code, got)
		}
		if unknown.Code != code {
			t.Errorf("UnknownCodeError.Code = %d, want %d", unknown.Code, code)
		}
	}
}

func TestErrFromCode_NoCodeMapsToSuccessButZero(t *testing.T) {
	t.Parallel()

	// Non-zero codes must never be silently treated as success.
	for code := int32(1); code <= 64; code++ {
		if errFromCode(code) == nil {
			t.Errorf("errFromCode(%d) = nil, non-zero code mapped to success", code)
		}
	}
}

func TestUnknownCodeError_Message(t *testing.T) {
	t.Parallel()

	err := &UnknownCodeError{Code: 99}
	want := "ucra: unknown result code 99"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrInvalidArgument, ErrOutOfMemory, ErrNotSupported, ErrInternal,
		ErrFileNotFound, ErrInvalidJSON, ErrInvalidManifest, ErrClosed,
		ErrCurveLengthMismatch,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %d and %d compare equal", i, j)
			}
		}
	}
}
