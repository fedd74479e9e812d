// Package apperrors содержит типизированную таксономию ошибок ядра.
// Хендлеры сопоставляют их с HTTP-кодами через errors.Is.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - сущность не существует или не соответствует ожидаемому
	// состоянию/владельцу для данного действия
	ErrNotFound = errors.New("not found")
	// ErrConflict - нарушение охранного условия на корректно сформированном
	// запросе (машина занята, инцидент в неподходящем статусе)
	ErrConflict = errors.New("conflict")
	// ErrValidation - некорректные входные данные
	ErrValidation = errors.New("validation failed")
)

func NotFoundf(format string, a ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, a...), ErrNotFound)
}

func Conflictf(format string, a ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, a...), ErrConflict)
}

func Invalidf(format string, a ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, a...), ErrValidation)
}
