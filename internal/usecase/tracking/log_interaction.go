package tracking

import (
	"context"
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
)

// DefaultHistoryLimit — сколько записей журнала отдаётся за один запрос.
const DefaultHistoryLimit = 100

// LogInteractionUseCase дописывает запись в журнал контактов.
// Существование спонсора не проверяется: sponsor_id хранится как ссылка.
type LogInteractionUseCase struct {
	interactionRepo repository.InteractionRepository
}

func NewLogInteractionUseCase(interactionRepo repository.InteractionRepository) *LogInteractionUseCase {
	return &LogInteractionUseCase{interactionRepo: interactionRepo}
}

func (uc *LogInteractionUseCase) Execute(ctx context.Context, sponsorID, kind, content string) (*entity.Interaction, error) {
	interactionType, err := valueobject.NewInteractionType(kind)
	if err != nil {
		return nil, err
	}

	interaction, err := entity.NewInteraction(sponsorID, interactionType, content, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := uc.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}
	return interaction, nil
}

type ListInteractionsUseCase struct {
	interactionRepo repository.InteractionRepository
}

func NewListInteractionsUseCase(interactionRepo repository.InteractionRepository) *ListInteractionsUseCase {
	return &ListInteractionsUseCase{interactionRepo: interactionRepo}
}

func (uc *ListInteractionsUseCase) Execute(ctx context.Context, sponsorID string) ([]*entity.Interaction, error) {
	return uc.interactionRepo.FindBySponsorID(ctx, sponsorID, DefaultHistoryLimit)
}
