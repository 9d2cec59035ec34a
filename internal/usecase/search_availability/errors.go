package search_availability

import "errors"

var (
	// ErrInvalidRange возвращается, когда дата начала не раньше даты окончания
	ErrInvalidRange = errors.New("search_availability: start must be before end")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("search_availability: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_availability: internal error")
)
