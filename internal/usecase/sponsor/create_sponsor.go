package sponsor

import (
	"context"
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
)

type CreateSponsorInput struct {
	Name         string
	Industry     string
	Location     string
	Email        *string
	Phone        *string
	Website      *string
	Status       string
	ProposalID   *string
	Notes        *string
	NextFollowUp *time.Time
}

type CreateSponsorUseCase struct {
	sponsorRepo repository.SponsorRepository
}

func NewCreateSponsorUseCase(sponsorRepo repository.SponsorRepository) *CreateSponsorUseCase {
	return &CreateSponsorUseCase{sponsorRepo: sponsorRepo}
}

func (uc *CreateSponsorUseCase) Execute(ctx context.Context, input CreateSponsorInput) (*entity.Sponsor, error) {
	sponsor, err := entity.NewSponsor(input.Name, input.Industry, input.Location)
	if err != nil {
		return nil, err
	}

	status, err := valueobject.NewSponsorStatus(input.Status)
	if err != nil {
		return nil, err
	}

	sponsor.Email = input.Email
	sponsor.Phone = input.Phone
	sponsor.Website = input.Website
	sponsor.Status = status
	sponsor.ProposalID = input.ProposalID
	sponsor.Notes = input.Notes
	sponsor.NextFollowUp = input.NextFollowUp

	if err := sponsor.Validate(); err != nil {
		return nil, err
	}

	sponsor.Touch(time.Now().UTC())
	if err := uc.sponsorRepo.Create(ctx, sponsor); err != nil {
		return nil, err
	}

	return sponsor, nil
}
