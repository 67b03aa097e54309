package store

import (
	"context"
	"errors"
)

type FormState int

const (
	Closed FormState = iota
	Creating
	Editing
)

var errFormClosed = errors.New("no form is open")

// Shaper turns the string edit buffer into the request payload: type
// coercion, blank repeated-entry filtering, derived-field fill-in.
// Package forms provides one per entity.
type Shaper func(buffer map[string]string) (any, error)

// Seeder populates the edit buffer from an existing record, reducing
// embedded references to their identifiers.
type Seeder[T Record] func(record T) map[string]string

// Form owns the ephemeral edit buffer of one modal form and dispatches
// submissions to the entity store.
type Form[T Record] struct {
	store    *Store[T]
	defaults map[string]string
	seed     Seeder[T]
	shape    Shaper

	state  FormState
	buffer map[string]string
	editID uint
}

func NewForm[T Record](store *Store[T], defaults map[string]string, seed Seeder[T], shape Shaper) *Form[T] {
	return &Form[T]{
		store:    store,
		defaults: defaults,
		seed:     seed,
		shape:    shape,
	}
}

func (f *Form[T]) State() FormState { return f.state }

// EditingID returns the identifier bound to the buffer, zero unless Editing.
func (f *Form[T]) EditingID() uint { return f.editID }

// Open starts a create flow with the buffer reset to field defaults.
func (f *Form[T]) Open() {
	f.state = Creating
	f.editID = 0
	f.buffer = make(map[string]string, len(f.defaults))
	for k, v := range f.defaults {
		f.buffer[k] = v
	}
}

// Edit starts an update flow with the buffer seeded from the record.
func (f *Form[T]) Edit(record T) {
	f.state = Editing
	f.editID = record.RecordID()
	f.buffer = f.seed(record)
}

// Set mutates one buffer field. Ignored while the form is closed.
func (f *Form[T]) Set(field, value string) {
	if f.state == Closed {
		return
	}
	f.buffer[field] = value
}

func (f *Form[T]) Get(field string) string {
	if f.buffer == nil {
		return ""
	}
	return f.buffer[field]
}

// Cancel discards the buffer without submitting.
func (f *Form[T]) Cancel() {
	f.state = Closed
	f.editID = 0
	f.buffer = nil
}

// Submit shapes the buffer into a payload and dispatches create or
// update depending on the current state. On success the form closes; on
// rejection the buffer is kept so the user can correct and resubmit,
// with the error surfaced through the store's observable.
func (f *Form[T]) Submit(ctx context.Context) error {
	if f.state == Closed {
		return errFormClosed
	}

	payload, err := f.shape(f.buffer)
	if err != nil {
		return err
	}

	if f.state == Editing {
		err = f.store.Update(ctx, f.editID, payload)
	} else {
		err = f.store.Create(ctx, payload)
	}
	if err != nil {
		return err
	}

	f.Cancel()
	return nil
}
