package glproc

import (
	"fmt"
	"strings"
)

// Command describes one GL command: its canonical name and the ordered
// availability tags under which a driver may export it. Earlier tags are
// preferred. A Command is immutable once built.
type Command struct {
	name string
	tags []Tag
}

// NewCommand builds a Command. It fails when name is empty, when no tags are
// given, or when a tag is a zero Extension (not built with NewExtension).
func NewCommand(name string, tags ...Tag) (*Command, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("glproc: command name is empty")
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAvailability, name)
	}
	for i, t := range tags {
		switch t := t.(type) {
		case nil:
			return nil, fmt.Errorf("glproc: %s: tag %d is nil", name, i)
		case Extension:
			if t.suffix == "" {
				return nil, &MalformedExtensionTagError{
					Extension: t.name,
					Reason:    fmt.Sprintf("tag %d of %s not built with NewExtension", i, name),
				}
			}
		}
	}
	return &Command{name: name, tags: append([]Tag(nil), tags...)}, nil
}

// MustCommand is like NewCommand but panics on error.
// Intended for static command tables.
func MustCommand(name string, tags ...Tag) *Command {
	c, err := NewCommand(name, tags...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the canonical command name.
func (c *Command) Name() string { return c.name }

// Tags returns a copy of the availability tags in preference order.
func (c *Command) Tags() []Tag {
	return append([]Tag(nil), c.tags...)
}

// Variants returns the symbol name of every tag, in preference order.
// Core tags of different APIs yield the same name; duplicates are kept so
// that Variants()[i] always belongs to Tags()[i].
func (c *Command) Variants() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.SymbolName(c.name)
	}
	return out
}

func (c *Command) String() string {
	return c.name
}
