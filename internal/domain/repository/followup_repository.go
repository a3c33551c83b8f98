package repository

import (
	"context"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
)

type FollowUpRepository interface {
	Create(ctx context.Context, followUp *entity.FollowUp) error
	// FindUpcoming возвращает ближайшие follow-up по возрастанию due_date.
	FindUpcoming(ctx context.Context, limit int) ([]*entity.FollowUp, error)
}
