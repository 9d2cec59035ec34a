package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrForbidden возвращается, когда у пользователя нет права бронировать
	ErrForbidden = errors.New("create_reservation: forbidden")

	// ErrRoomNotFound возвращается, когда номер не найден или неактивен
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrRoomUnavailable возвращается, когда номер занят на выбранные даты
	ErrRoomUnavailable = errors.New("create_reservation: room is not available for the selected dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
