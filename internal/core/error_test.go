package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsFatal(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"missing input", ErrInputMissing, false},
		{"wrapped missing input", fmt.Errorf("tlds.txt: %w", ErrInputMissing), false},
		{"results unavailable", ErrResultsUnavailable, true},
		{"wrapped malformed", fmt.Errorf("line 3: %w", ErrMalformedLine), true},
		{"foreign error", errors.New("boom"), true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsFatal(tc.err); got != tc.want {
				t.Errorf("IsFatal(%v) = %v; want %v", tc.err, got, tc.want)
			}
		})
	}
}
