package delete_room

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_room: invalid input data")

	// ErrForbidden возвращается, когда у пользователя нет права удалять номера
	ErrForbidden = errors.New("delete_room: forbidden")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("delete_room: room not found")

	// ErrRoomHasActiveReservations возвращается, когда у номера есть действующие или будущие бронирования
	ErrRoomHasActiveReservations = errors.New("delete_room: room has active or upcoming reservations")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_room: internal error")
)
