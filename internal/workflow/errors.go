package workflow

import "errors"

// Failure kinds recorded by the controller. They are never returned to callers;
// they surface through Controller.Err and the debug log.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrClipboardReadDenied = errors.New("clipboard read denied")
	ErrClipboardEmpty      = errors.New("clipboard empty")
	ErrProcessingFailed    = errors.New("processing failed")
	ErrPopupBlocked        = errors.New("external open blocked")
)

// User-facing notification messages.
const (
	MsgInvalidURL      = "Please provide a valid URL"
	MsgProcessed       = "Processed and copied to clipboard!"
	MsgProcessFailed   = "Failed to access clipboard or process URL"
	MsgPopupBlocked    = "Popup blocked. Allow popups to open the processed link."
	MsgClipboardEmpty  = "Clipboard is empty"
	MsgClipboardDenied = "Permission to read clipboard denied"
	MsgCopied          = "Copied to clipboard"
	MsgCopyFailed      = "Failed to copy to clipboard"
)
