package prompt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      int
		wantErr   error
		wantRange bool
	}{
		{"lower bound", "1", 1, nil, false},
		{"upper bound", "4", 4, nil, false},
		{"whitespace", "  3\n", 3, nil, false},
		{"zero", "0", 0, nil, true},
		{"above max", "5", 0, nil, true},
		{"negative", "-2", 0, nil, true},
		{"letters", "abc", 0, ErrNotNumber, false},
		{"empty", "", 0, ErrNotNumber, false},
		{"decimal", "2.5", 0, ErrNotNumber, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChoice(tt.raw, 1, 4)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantRange:
				var rangeErr *RangeError
				require.ErrorAs(t, err, &rangeErr)
				assert.Equal(t, 1, rangeErr.Min)
				assert.Equal(t, 4, rangeErr.Max)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRecoverable(t *testing.T) {
	assert.True(t, Recoverable(ErrNotNumber))
	assert.True(t, Recoverable(&RangeError{Min: 1, Max: 5}))
	assert.True(t, Recoverable(fmt.Errorf("menu: %w", ErrNotNumber)))
	assert.False(t, Recoverable(ErrInterrupted))
	assert.False(t, Recoverable(errors.New("boom")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Please enter a valid number", Message(ErrNotNumber))
	assert.Equal(t, "Please enter a number between 1 and 5", Message(&RangeError{Value: 9, Min: 1, Max: 5}))
}

func TestInterrupted(t *testing.T) {
	assert.True(t, Interrupted(ErrInterrupted))
	assert.True(t, Interrupted(fmt.Errorf("read: %w", ErrInterrupted)))
	assert.True(t, Interrupted(context.Canceled))
	assert.False(t, Interrupted(ErrNotNumber))
	assert.False(t, Interrupted(errors.New("boom")))
}
