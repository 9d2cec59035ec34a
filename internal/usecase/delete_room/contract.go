package delete_room

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Room, error)
	SoftDelete(ctx context.Context, id string) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	CountActiveFuture(ctx context.Context, roomID string, now time.Time) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
