package opener

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowser_Open(t *testing.T) {
	orig := openURL
	t.Cleanup(func() { openURL = orig })

	var got string
	openURL = func(u string) error {
		got = u
		return nil
	}

	require.NoError(t, NewBrowser().Open(context.Background(), "https://example.com/tree/a"))
	assert.Equal(t, "https://example.com/tree/a", got)
}

func TestBrowser_OpenRefused(t *testing.T) {
	orig := openURL
	t.Cleanup(func() { openURL = orig })

	refused := errors.New("exec: \"xdg-open\": executable file not found in $PATH")
	openURL = func(string) error { return refused }

	err := NewBrowser().Open(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, refused)
}

func TestBrowser_CancelledContext(t *testing.T) {
	orig := openURL
	t.Cleanup(func() { openURL = orig })

	called := false
	openURL = func(string) error {
		called = true
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, NewBrowser().Open(ctx, "https://example.com"), context.Canceled)
	assert.False(t, called)
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.Open(context.Background(), "https://example.com"))
}
