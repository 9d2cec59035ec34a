package change_reservation_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (например, неизвестный статус)
	ErrInvalidInput = errors.New("change_reservation_status: invalid input data")

	// ErrForbidden возвращается, когда у пользователя нет прав на операцию
	ErrForbidden = errors.New("change_reservation_status: forbidden")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("change_reservation_status: reservation not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса.
	// Цепочка ошибок содержит *domain.InvalidTransitionError с парой from → to.
	ErrInvalidTransition = errors.New("change_reservation_status: invalid status transition")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_reservation_status: internal error")
)
