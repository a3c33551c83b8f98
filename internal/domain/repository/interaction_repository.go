package repository

import (
	"context"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
)

type InteractionRepository interface {
	Create(ctx context.Context, interaction *entity.Interaction) error
	// FindBySponsorID возвращает записи от новых к старым.
	FindBySponsorID(ctx context.Context, sponsorID string, limit int) ([]*entity.Interaction, error)
}
