package codes

import "context"

// SequenceRepository источник порядковых номеров кодов
type SequenceRepository interface {
	NextCodeSequence(ctx context.Context, year int) (int64, error)
}
