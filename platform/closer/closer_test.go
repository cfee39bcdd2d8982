package closer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAll(t *testing.T) {
	t.Parallel()

	c := New()

	var order []string
	c.AddNamed("first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	c.AddNamed("second", func(context.Context) error {
		order = append(order, "second")
		return errors.New("boom")
	})

	err := c.CloseAll(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "second: boom")
	assert.Equal(t, []string{"second", "first"}, order)

	// second call is a no-op
	require.NoError(t, c.CloseAll(context.Background()))
	assert.Len(t, order, 2)
}

func TestCloseAllCancelledContext(t *testing.T) {
	t.Parallel()

	c := New()
	called := false
	c.AddNamed("db", func(context.Context) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.CloseAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
