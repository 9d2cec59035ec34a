package codes

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

// Generator выдаёт коды бронирований вида H<год>-<номер>.
// Номер берётся из атомарного счетчика за год: вызов внутри транзакции
// бронирования гарантирует уникальность и возрастание кодов.
type Generator struct {
	repo SequenceRepository
}

// NewGenerator создает генератор кодов
func NewGenerator(repo SequenceRepository) *Generator {
	return &Generator{repo: repo}
}

// Next возвращает следующий код для года
func (g *Generator) Next(ctx context.Context, year int) (string, error) {
	if year < 1 || year > 9999 {
		return "", fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	seq, err := g.repo.NextCodeSequence(ctx, year)
	if err != nil {
		return "", fmt.Errorf("%w: year=%d: %v", ErrSequence, year, err)
	}

	return domain.FormatReservationCode(year, seq), nil
}
