package proposal

import (
	"context"
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

// GenerateProposalUseCase синтезирует предложение и сохраняет его снимок.
type GenerateProposalUseCase struct {
	proposalRepo repository.ProposalRepository
}

func NewGenerateProposalUseCase(proposalRepo repository.ProposalRepository) *GenerateProposalUseCase {
	return &GenerateProposalUseCase{proposalRepo: proposalRepo}
}

func (uc *GenerateProposalUseCase) Execute(ctx context.Context, input entity.ProposalInput) (*entity.Proposal, error) {
	proposal, err := Synthesize(input)
	if err != nil {
		return nil, err
	}

	proposal.CreatedAt = time.Now().UTC()
	if err := uc.proposalRepo.Create(ctx, proposal); err != nil {
		if apperror.CodeOf(err) != apperror.ErrCodeInternal {
			return nil, err
		}
		return nil, apperror.Unavailable(err, "не удалось сохранить снимок предложения")
	}

	return proposal, nil
}

type GetProposalUseCase struct {
	proposalRepo repository.ProposalRepository
}

func NewGetProposalUseCase(proposalRepo repository.ProposalRepository) *GetProposalUseCase {
	return &GetProposalUseCase{proposalRepo: proposalRepo}
}

func (uc *GetProposalUseCase) Execute(ctx context.Context, proposalID string) (*entity.Proposal, error) {
	return uc.proposalRepo.FindByID(ctx, proposalID)
}
