package lifecycle

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidState - переход запрещен в текущем состоянии
	ErrInvalidState = errors.New("invalid state")
	// ErrValidation - входные данные нарушают ограничения
	ErrValidation = errors.New("validation failed")
)

// TransitionError описывает нарушенное предусловие перехода
type TransitionError struct {
	Entity string
	From   string
	To     string
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move %s -> %s: %s", e.Entity, e.From, e.To, e.Reason)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidState
}

// ValidationError - ошибки по полям (имена полей как в JSON)
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, exists := f[field]; !exists {
		f[field] = msg
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

func invalid(entity string, from, to any, reason string) error {
	return &TransitionError{Entity: entity, From: fmt.Sprint(from), To: fmt.Sprint(to), Reason: reason}
}
