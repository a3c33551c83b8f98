package repository

import (
	"context"
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
)

type SponsorFilter struct {
	// Status — точное совпадение; пустая строка означает все статусы.
	Status string
	Limit  int
}

// SponsorRepository. Методы, принимающие id, возвращают apperror с кодом
// INVALID_ID для некорректного формата и NOT_FOUND для отсутствующей записи.
// UpdateStatus и UpdateNotes меняют поля одной атомарной операцией хранилища.
type SponsorRepository interface {
	Create(ctx context.Context, sponsor *entity.Sponsor) error
	FindByID(ctx context.Context, id string) (*entity.Sponsor, error)
	List(ctx context.Context, filter SponsorFilter) ([]*entity.Sponsor, error)
	UpdateStatus(ctx context.Context, id string, status valueobject.SponsorStatus, at time.Time) error
	UpdateNotes(ctx context.Context, id string, notes string, at time.Time) error
	CountByStatus(ctx context.Context, status valueobject.SponsorStatus) (int, error)
}
