package tracking

import (
	"context"
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
)

// ScheduleFollowUpUseCase создаёт запись follow-up. Как и журнал контактов,
// не проверяет существование спонсора.
type ScheduleFollowUpUseCase struct {
	followUpRepo repository.FollowUpRepository
}

func NewScheduleFollowUpUseCase(followUpRepo repository.FollowUpRepository) *ScheduleFollowUpUseCase {
	return &ScheduleFollowUpUseCase{followUpRepo: followUpRepo}
}

func (uc *ScheduleFollowUpUseCase) Execute(ctx context.Context, sponsorID string, dueDate time.Time, note *string) (*entity.FollowUp, error) {
	followUp, err := entity.NewFollowUp(sponsorID, dueDate.UTC(), note, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := uc.followUpRepo.Create(ctx, followUp); err != nil {
		return nil, err
	}
	return followUp, nil
}
