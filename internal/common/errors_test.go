package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserErrorMessage(t *testing.T) {
	err := NewUserError("failed to load votes", errors.New("open votes.csv: no such file"))
	assert.Equal(t, "failed to load votes: open votes.csv: no such file", err.Error())

	bare := NewUserError("nothing to report", nil)
	assert.Equal(t, "nothing to report", bare.Error())
}

func TestUserErrorPreservesSentinel(t *testing.T) {
	cause := fmt.Errorf("definition file x.json: %w", ErrConfiguration)
	err := NewUserError("failed to load the definition", cause)

	require.ErrorIs(t, err, ErrConfiguration)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "failed to load the definition", userErr.UserMessage)
	assert.Same(t, cause, userErr.Unwrap())
}
