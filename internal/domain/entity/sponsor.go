package entity

import (
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
	"github.com/ignatzorin/sponsorship-backend/internal/validation"
)

// Sponsor — компания, с которой ведутся переговоры о спонсорстве.
// Записи не удаляются: declined — конечный статус, а не удаление.
type Sponsor struct {
	ID           string
	Name         string
	Industry     string
	Location     string
	Email        *string
	Phone        *string
	Website      *string
	Status       valueobject.SponsorStatus
	ProposalID   *string
	Notes        *string
	NextFollowUp *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewSponsor(name, industry, location string) (*Sponsor, error) {
	if err := validation.ValidateRequired("название компании", name, validation.MaxNameLength); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if err := validation.ValidateRequired("индустрия", industry, validation.MaxNameLength); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if err := validation.ValidateRequired("локация", location, validation.MaxShortTextLength); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	return &Sponsor{
		Name:     name,
		Industry: industry,
		Location: location,
		Status:   valueobject.SponsorStatusNew,
	}, nil
}

// Validate проверяет необязательные контактные поля.
func (s *Sponsor) Validate() error {
	if !s.Status.IsValid() {
		return apperror.Validation("некорректный статус спонсора")
	}
	if s.Email != nil {
		if err := validation.ValidateEmail(*s.Email); err != nil {
			return apperror.Validation(err.Error())
		}
	}
	if s.Website != nil {
		if err := validation.ValidateURL("сайт", *s.Website); err != nil {
			return apperror.Validation(err.Error())
		}
	}
	if err := validation.ValidateOptional("телефон", s.Phone, validation.MaxPhoneLength); err != nil {
		return apperror.Validation(err.Error())
	}
	if err := validation.ValidateOptional("заметка", s.Notes, validation.MaxNoteLength); err != nil {
		return apperror.Validation(err.Error())
	}
	return nil
}

// Touch обновляет время изменения записи.
func (s *Sponsor) Touch(at time.Time) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = at
	}
	s.UpdatedAt = at
}
