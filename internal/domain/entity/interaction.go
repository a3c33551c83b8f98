package entity

import (
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
	"github.com/ignatzorin/sponsorship-backend/internal/validation"
)

// Interaction — запись журнала контактов. SponsorID — ссылка без проверки существования спонсора.
type Interaction struct {
	ID        string
	SponsorID string
	Type      valueobject.InteractionType
	Content   string
	CreatedAt time.Time
}

func NewInteraction(sponsorID string, kind valueobject.InteractionType, content string, now time.Time) (*Interaction, error) {
	if err := validation.ValidateNonEmpty("sponsor_id", sponsorID); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if !kind.IsValid() {
		return nil, apperror.Validation("некорректный тип взаимодействия")
	}
	// Пустое содержание допустимо, ограничена только длина.
	if err := validation.ValidateLength("содержание", content, 0, validation.MaxContentLength); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	return &Interaction{
		SponsorID: sponsorID,
		Type:      kind,
		Content:   content,
		CreatedAt: now,
	}, nil
}
