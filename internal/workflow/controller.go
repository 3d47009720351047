// Package workflow drives a single URL through validation, transformation,
// clipboard copy, browser open and history, reporting each outcome through a
// notify.Notifier.
package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/treeflip/treeflip/internal/clipboard"
	"github.com/treeflip/treeflip/internal/history"
	"github.com/treeflip/treeflip/internal/notify"
	"github.com/treeflip/treeflip/internal/transform"
	"github.com/treeflip/treeflip/internal/utils"
)

// ClipboardPort reads and writes the host clipboard.
type ClipboardPort interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, text string) error
}

// ExternalOpener opens a URL in a new browsing context. An error means the
// open was refused or could not be started.
type ExternalOpener interface {
	Open(ctx context.Context, url string) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithHistory makes the controller append to an existing store.
func WithHistory(h *history.Store) Option {
	return func(c *Controller) {
		c.history = h
	}
}

// WithValidator replaces the default any-scheme URL validator.
func WithValidator(v *clipboard.Validator) Option {
	return func(c *Controller) {
		c.validator = v
	}
}

// Controller owns the interaction state. Operations are serialized; a second
// call waits for the one in flight to finish.
type Controller struct {
	clip     ClipboardPort
	opener   ExternalOpener
	notifier notify.Notifier
	history  *history.Store

	validator *clipboard.Validator

	// held for the whole of an operation, including clipboard I/O
	opMu sync.Mutex

	mu     sync.RWMutex
	state  State
	input  string
	result string
	err    error

	transform func(string) string
}

// New creates a controller in the Idle state.
func New(clip ClipboardPort, opener ExternalOpener, n notify.Notifier, opts ...Option) *Controller {
	if n == nil {
		n = notify.Discard
	}
	c := &Controller{
		clip:      clip,
		opener:    opener,
		notifier:  n,
		state:     Idle,
		transform: transform.URL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.history == nil {
		c.history = history.NewStore()
	}
	return c
}

// ProcessText validates text, transforms it, copies the result to the clipboard,
// opens it, and records it in history. Failures are reported, never returned.
func (c *Controller) ProcessText(ctx context.Context, text string) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.processText(ctx, text)
}

func (c *Controller) processText(ctx context.Context, text string) {
	if text == "" || !c.valid(text) {
		utils.Debug("Rejected input %q", text)
		c.fail(ErrInvalidInput, MsgInvalidURL)
		return
	}

	c.setState(Processing)

	processed, err := c.safeTransform(text)
	if err != nil {
		utils.Debug("Transform failed for %q: %v", text, err)
		c.fail(fmt.Errorf("%w: %v", ErrProcessingFailed, err), MsgProcessFailed)
		return
	}

	c.mu.Lock()
	c.result = processed
	c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		utils.Debug("Abandoned before clipboard write: %v", err)
		c.fail(fmt.Errorf("%w: %w", ErrProcessingFailed, err), MsgProcessFailed)
		return
	}
	if err := c.clip.Write(ctx, processed); err != nil {
		utils.Debug("Clipboard write failed: %v", err)
		c.fail(fmt.Errorf("%w: %w", ErrProcessingFailed, err), MsgProcessFailed)
		return
	}

	if c.opener != nil {
		if err := c.opener.Open(ctx, processed); err != nil {
			utils.Debug("%v: %v", ErrPopupBlocked, err)
			c.notifier.Notify(notify.Notification{Message: MsgPopupBlocked, Severity: notify.Error})
		}
	}

	rec := c.history.Add(text, processed)
	utils.Debug("Processed %s -> %s [%s]", rec.Original, rec.Processed, rec.ID)

	c.mu.Lock()
	c.state = Success
	c.err = nil
	c.mu.Unlock()

	c.notifier.Notify(notify.Notification{Message: MsgProcessed, Severity: notify.Success})
}

// PasteAndProcess reads the clipboard and processes its text. Read failures and
// an empty clipboard are reported without changing state.
func (c *Controller) PasteAndProcess(ctx context.Context) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	text, err := c.clip.Read(ctx)
	if err != nil {
		utils.Debug("Clipboard read failed: %v", err)
		c.setErr(fmt.Errorf("%w: %w", ErrClipboardReadDenied, err))
		c.notifier.Notify(notify.Notification{Message: MsgClipboardDenied, Severity: notify.Error})
		return
	}
	if text == "" {
		c.setErr(ErrClipboardEmpty)
		c.notifier.Notify(notify.Notification{Message: MsgClipboardEmpty, Severity: notify.Error})
		return
	}

	c.SetInput(text)
	c.processText(ctx, text)
}

// Clear resets the visible input and result and returns to Idle. History is kept.
func (c *Controller) Clear() {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = ""
	c.result = ""
	c.state = Idle
	c.err = nil
}

// Recopy writes an already produced result back to the clipboard.
func (c *Controller) Recopy(ctx context.Context, text string) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.recopy(ctx, text)
}

// RecopyRecord copies the processed URL of the history record with the given ID.
// It reports false if no such record exists.
func (c *Controller) RecopyRecord(ctx context.Context, id string) bool {
	rec, ok := c.history.Get(id)
	if !ok {
		return false
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.recopy(ctx, rec.Processed)
	return true
}

func (c *Controller) recopy(ctx context.Context, text string) {
	if err := c.clip.Write(ctx, text); err != nil {
		utils.Debug("Recopy failed: %v", err)
		c.notifier.Notify(notify.Notification{Message: MsgCopyFailed, Severity: notify.Error})
		return
	}
	c.notifier.Notify(notify.Notification{Message: MsgCopied, Severity: notify.Success})
}

// SetInput replaces the visible input text.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = text
}

// State returns the current interaction state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Input returns the visible input text.
func (c *Controller) Input() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.input
}

// Result returns the most recent transformation output, or "" after Clear.
func (c *Controller) Result() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result
}

// Err returns the failure recorded by the last operation, if any.
func (c *Controller) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// History returns the recorded transformations, newest first.
func (c *Controller) History() []history.Record {
	return c.history.List()
}

func (c *Controller) safeTransform(text string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transform panic: %v", r)
		}
	}()
	return c.transform(text), nil
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

func (c *Controller) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

func (c *Controller) valid(text string) bool {
	if c.validator == nil {
		return clipboard.IsValidURL(text)
	}
	return c.validator.Valid(text)
}

func (c *Controller) fail(err error, msg string) {
	c.mu.Lock()
	c.state = Error
	c.err = err
	c.mu.Unlock()

	c.notifier.Notify(notify.Notification{Message: msg, Severity: notify.Error})
}
