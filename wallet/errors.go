package wallet

import (
	"errors"
	"fmt"
	"strings"
)

// Messages shown to the user
const (
	MsgCancelled  = "Connection cancelled by user"
	MsgNoAccounts = "No accounts found in wallet"
	MsgFallback   = "Failed to connect to wallet"
)

var (
	// ErrNoAccounts is returned when a provider connects without any account
	ErrNoAccounts = errors.New("No accounts returned from wallet provider")
	// ErrNoProvider is returned when the machine has no provider configured
	ErrNoProvider = errors.New("no wallet provider configured")

	errNoFetcher = errors.New("no account fetcher configured")
)

// panicError wraps a value recovered from a provider panic
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("provider panic: %v", e.value)
}

// Categorize maps a connection failure to the message shown to the user
func Categorize(err error) string {
	if err == nil {
		return MsgFallback
	}
	var pe *panicError
	if errors.As(err, &pe) {
		return MsgFallback
	}
	msg := err.Error()
	switch {
	case msg == "":
		return MsgFallback
	case strings.Contains(msg, "User rejected"):
		return MsgCancelled
	case strings.Contains(msg, "No accounts"):
		return MsgNoAccounts
	default:
		return msg
	}
}

func recovered(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &panicError{value: v}
}
