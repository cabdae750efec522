package glproc

import (
	"errors"
	"fmt"
)

// Resolution errors.
var (
	// ErrNoActiveContext is returned when no GL context is current on the
	// calling thread. Bind a context and retry; this result is never cached.
	ErrNoActiveContext = errors.New("glproc: no current GL context")

	// ErrSymbolUnavailable is matched by every *SymbolUnavailableError.
	ErrSymbolUnavailable = errors.New("glproc: symbol unavailable")

	// ErrMalformedExtensionTag is matched by every *MalformedExtensionTagError.
	ErrMalformedExtensionTag = errors.New("glproc: malformed extension tag")

	// ErrNoAvailability is returned when a command is built without tags.
	ErrNoAvailability = errors.New("glproc: command has no availability tags")

	// ErrUnknownCommand is returned when a Registry is asked for a command
	// it was not constructed with.
	ErrUnknownCommand = errors.New("glproc: command not in registry")

	// ErrNilAddress is returned when an invoke is attempted with a nil
	// function address.
	ErrNilAddress = errors.New("glproc: nil function address")
)

// SymbolUnavailableError reports that no tag of a command was both satisfied
// by the current context and exported by the driver.
type SymbolUnavailableError struct {
	// Name is the canonical command name.
	Name string
	// Tried lists the symbol names that were satisfied but not exported.
	Tried []string
}

func (e *SymbolUnavailableError) Error() string {
	if len(e.Tried) == 0 {
		return fmt.Sprintf("glproc: %s: not available in current context", e.Name)
	}
	return fmt.Sprintf("glproc: %s: not exported by driver (tried %v)", e.Name, e.Tried)
}

// Unwrap allows errors.Is(err, ErrSymbolUnavailable).
func (e *SymbolUnavailableError) Unwrap() error { return ErrSymbolUnavailable }

// MalformedExtensionTagError reports an extension name whose vendor prefix
// has no known suffix mapping. It is raised while the command table is
// built, never during resolution.
type MalformedExtensionTagError struct {
	Extension string
	Reason    string
}

func (e *MalformedExtensionTagError) Error() string {
	return fmt.Sprintf("glproc: extension %q: %s", e.Extension, e.Reason)
}

// Unwrap allows errors.Is(err, ErrMalformedExtensionTag).
func (e *MalformedExtensionTagError) Unwrap() error { return ErrMalformedExtensionTag }
