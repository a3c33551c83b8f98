package repository

import (
	"context"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
)

// ProposalRepository хранит неизменяемые снимки предложений.
type ProposalRepository interface {
	Create(ctx context.Context, proposal *entity.Proposal) error
	FindByID(ctx context.Context, id string) (*entity.Proposal, error)
}
