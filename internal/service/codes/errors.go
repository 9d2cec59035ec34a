package codes

import "errors"

var (
	// ErrInvalidYear возвращается для года вне допустимого диапазона
	ErrInvalidYear = errors.New("codes: invalid year")

	// ErrSequence возвращается, когда не удалось получить следующий номер
	ErrSequence = errors.New("codes: failed to allocate sequence")
)
