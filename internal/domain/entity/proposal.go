package entity

import (
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
	"github.com/ignatzorin/sponsorship-backend/internal/validation"
)

// ProposalInput — исходные данные мероприятия, из которых собирается предложение.
type ProposalInput struct {
	Title              string
	Description        string
	Date               *string
	Location           *string
	AudienceSize       *int
	Demographics       *string
	EngagementChannels []string
	Objectives         []string
	IndustriesTarget   []string
}

// Validate отклоняет вход до синтеза.
func (in ProposalInput) Validate() error {
	if err := validation.ValidateRequired("название", in.Title, validation.MaxTitleLength); err != nil {
		return apperror.Validation(err.Error())
	}
	if err := validation.ValidateRequired("описание", in.Description, validation.MaxDescriptionLength); err != nil {
		return apperror.Validation(err.Error())
	}
	if in.AudienceSize != nil && (*in.AudienceSize < 0 || *in.AudienceSize > validation.MaxAudienceSize) {
		return apperror.Validation("размер аудитории должен быть от 0 до 100000000")
	}
	if err := validation.ValidateOptional("дата", in.Date, validation.MaxShortTextLength); err != nil {
		return apperror.Validation(err.Error())
	}
	if err := validation.ValidateOptional("место", in.Location, validation.MaxShortTextLength); err != nil {
		return apperror.Validation(err.Error())
	}
	if err := validation.ValidateOptional("демография", in.Demographics, validation.MaxDemographicsLength); err != nil {
		return apperror.Validation(err.Error())
	}
	if err := validation.ValidateList("каналы", in.EngagementChannels); err != nil {
		return apperror.Validation(err.Error())
	}
	if err := validation.ValidateList("цели", in.Objectives); err != nil {
		return apperror.Validation(err.Error())
	}
	if err := validation.ValidateList("индустрии", in.IndustriesTarget); err != nil {
		return apperror.Validation(err.Error())
	}
	return nil
}

// BenefitTier — спонсорский пакет с ценой и списком преимуществ.
type BenefitTier struct {
	Name     string
	Price    float64
	Benefits []string
}

// Proposal — сгенерированное предложение. После сохранения не изменяется:
// повторная генерация создаёт новый снимок.
type Proposal struct {
	ID               string
	Title            string
	Description      string
	Date             *string
	Location         *string
	AudienceSummary  string
	ValueProposition []string
	Tiers            []BenefitTier
	Objectives       []string
	CreatedAt        time.Time
}
