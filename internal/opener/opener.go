// Package opener launches URLs in the user's default browser.
package opener

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/browser"
)

var openURL = browser.OpenURL

func init() {
	// xdg-open and friends chatter on stdout, which would corrupt the TUI
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Browser opens URLs with the platform browser launcher.
type Browser struct{}

// NewBrowser returns a Browser.
func NewBrowser() *Browser {
	return &Browser{}
}

// Open starts the default browser on url. An error means the launch was refused.
func (b *Browser) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := openURL(url); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}

// Noop never opens anything. It stands in when opening is disabled.
type Noop struct{}

func (Noop) Open(context.Context, string) error { return nil }
