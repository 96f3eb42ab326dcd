package commands

import (
	"errors"
	"fmt"
)

var ErrUnknownCommand = errors.New("no handler registered for command")

type Handler func()

// Table maps every command to the function that carries it out.
type Table struct {
	handlers map[Command]Handler
}

func NewTable() *Table {
	return &Table{handlers: make(map[Command]Handler)}
}

func (t *Table) Register(c Command, h Handler) {
	t.handlers[c] = h
}

// Validate reports every command that has no handler.
func (t *Table) Validate() error {
	var errs []error
	for _, c := range All() {
		if t.handlers[c] == nil {
			errs = append(errs, fmt.Errorf("%s: %w", c, ErrUnknownCommand))
		}
	}
	return errors.Join(errs...)
}

func (t *Table) Dispatch(c Command) error {
	h := t.handlers[c]
	if h == nil {
		return fmt.Errorf("%s: %w", c, ErrUnknownCommand)
	}
	h()
	return nil
}
