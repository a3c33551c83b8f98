package sponsor

import (
	"context"
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
	"github.com/ignatzorin/sponsorship-backend/internal/validation"
)

// UpdateSponsorStatusUseCase записывает новый статус. Переходы не проверяются:
// статус сообщает пользователь, трекер только фиксирует его со временем изменения.
type UpdateSponsorStatusUseCase struct {
	sponsorRepo repository.SponsorRepository
}

func NewUpdateSponsorStatusUseCase(sponsorRepo repository.SponsorRepository) *UpdateSponsorStatusUseCase {
	return &UpdateSponsorStatusUseCase{sponsorRepo: sponsorRepo}
}

func (uc *UpdateSponsorStatusUseCase) Execute(ctx context.Context, sponsorID, status string) error {
	if status == "" {
		return apperror.Validation("статус обязателен")
	}
	newStatus, err := valueobject.NewSponsorStatus(status)
	if err != nil {
		return err
	}

	return uc.sponsorRepo.UpdateStatus(ctx, sponsorID, newStatus, time.Now().UTC())
}

// AddSponsorNoteUseCase перезаписывает единственное поле заметок.
type AddSponsorNoteUseCase struct {
	sponsorRepo repository.SponsorRepository
}

func NewAddSponsorNoteUseCase(sponsorRepo repository.SponsorRepository) *AddSponsorNoteUseCase {
	return &AddSponsorNoteUseCase{sponsorRepo: sponsorRepo}
}

func (uc *AddSponsorNoteUseCase) Execute(ctx context.Context, sponsorID, note string) error {
	if err := validation.ValidateLength("заметка", note, 0, validation.MaxNoteLength); err != nil {
		return apperror.Validation(err.Error())
	}

	return uc.sponsorRepo.UpdateNotes(ctx, sponsorID, note, time.Now().UTC())
}
