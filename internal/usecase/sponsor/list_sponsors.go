package sponsor

import (
	"context"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
)

// DefaultListLimit ограничивает размер ответа списка спонсоров.
const DefaultListLimit = 100

type ListSponsorsUseCase struct {
	sponsorRepo repository.SponsorRepository
	limit       int
}

func NewListSponsorsUseCase(sponsorRepo repository.SponsorRepository, limit int) *ListSponsorsUseCase {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return &ListSponsorsUseCase{sponsorRepo: sponsorRepo, limit: limit}
}

// Execute фильтрует по точному совпадению статуса, если он передан.
func (uc *ListSponsorsUseCase) Execute(ctx context.Context, status string) ([]*entity.Sponsor, error) {
	return uc.sponsorRepo.List(ctx, repository.SponsorFilter{
		Status: status,
		Limit:  uc.limit,
	})
}

type GetSponsorUseCase struct {
	sponsorRepo repository.SponsorRepository
}

func NewGetSponsorUseCase(sponsorRepo repository.SponsorRepository) *GetSponsorUseCase {
	return &GetSponsorUseCase{sponsorRepo: sponsorRepo}
}

func (uc *GetSponsorUseCase) Execute(ctx context.Context, sponsorID string) (*entity.Sponsor, error) {
	return uc.sponsorRepo.FindByID(ctx, sponsorID)
}
