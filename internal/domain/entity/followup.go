package entity

import (
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
	"github.com/ignatzorin/sponsorship-backend/internal/validation"
)

// FollowUp — запланированное действие по спонсору. Создаётся один раз и не меняется.
type FollowUp struct {
	ID        string
	SponsorID string
	DueDate   time.Time
	Note      *string
	CreatedAt time.Time
}

func NewFollowUp(sponsorID string, dueDate time.Time, note *string, now time.Time) (*FollowUp, error) {
	if err := validation.ValidateNonEmpty("sponsor_id", sponsorID); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if dueDate.IsZero() {
		return nil, apperror.Validation("дата follow-up обязательна")
	}
	if err := validation.ValidateOptional("заметка", note, validation.MaxNoteLength); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	return &FollowUp{
		SponsorID: sponsorID,
		DueDate:   dueDate,
		Note:      note,
		CreatedAt: now,
	}, nil
}
