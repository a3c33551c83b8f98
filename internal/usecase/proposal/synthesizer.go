package proposal

import (
	"math"
	"strings"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
)

const (
	TierBronze = "Bronze"
	TierSilver = "Silver"
	TierGold   = "Gold"
)

const (
	minBasePrice         = 500.0
	pricePerAttendee     = 0.5
	fallbackAudienceSize = 500

	nicheAudiencePhrase = "audience aligned to your niche"
	defaultDemographics = "Mixed age groups with strong local presence"
	defaultChannels     = "email, social, on-site activations"
)

var valueProposition = [...]string{
	"Direct access to target local audiences",
	"Brand visibility across digital and on-site touchpoints",
	"Measurable engagement and post-event reporting",
	"Long-term partnership opportunities",
}

type tierTemplate struct {
	name       string
	multiplier float64
	benefits   []string
}

// Цена пакета растёт с аудиторией, состав преимуществ фиксирован.
var tierTemplates = [...]tierTemplate{
	{
		name:       TierBronze,
		multiplier: 1,
		benefits:   []string{"Logo on website", "Social media mention", "2 event passes"},
	},
	{
		name:       TierSilver,
		multiplier: 2,
		benefits:   []string{"Medium logo placement", "2 dedicated social posts", "4 event passes", "Booth space"},
	},
	{
		name:       TierGold,
		multiplier: 3.5,
		benefits:   []string{"Prime logo placement", "Newsletter feature", "Stage shoutout", "6 event passes", "Lead capture access"},
	},
}

// Synthesize собирает полное предложение из входных данных мероприятия.
// Функция детерминирована и ничего не сохраняет.
func Synthesize(input entity.ProposalInput) (*entity.Proposal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return &entity.Proposal{
		Title:            input.Title,
		Description:      input.Description,
		Date:             cloneString(input.Date),
		Location:         cloneString(input.Location),
		AudienceSummary:  AudienceSummary(input),
		ValueProposition: ValueProposition(),
		Tiers:            Tiers(input.AudienceSize),
		Objectives:       append([]string{}, input.Objectives...),
	}, nil
}

// AudienceSummary описывает охват, демографию и каналы одной строкой.
func AudienceSummary(input entity.ProposalInput) string {
	reach := nicheAudiencePhrase
	if input.AudienceSize != nil && *input.AudienceSize > 0 {
		reach = "~" + valueobject.FormatCount(*input.AudienceSize) + " attendees"
	}

	demographics := defaultDemographics
	if input.Demographics != nil && *input.Demographics != "" {
		demographics = *input.Demographics
	}

	channels := defaultChannels
	if len(input.EngagementChannels) > 0 {
		channels = strings.Join(input.EngagementChannels, ", ")
	}

	return "Projected reach " + reach + ". Demographics: " + demographics + ". Engagement via " + channels + "."
}

// ValueProposition возвращает копию фиксированного списка выгод.
func ValueProposition() []string {
	out := make([]string, len(valueProposition))
	copy(out, valueProposition[:])
	return out
}

// BasePrice — цена Bronze: полдоллара за участника, но не меньше 500.
// Отсутствующий или нулевой размер аудитории считается равным 500.
func BasePrice(audienceSize *int) float64 {
	size := fallbackAudienceSize
	if audienceSize != nil && *audienceSize > 0 {
		size = *audienceSize
	}
	return math.Max(minBasePrice, float64(size)*pricePerAttendee)
}

// Tiers возвращает пакеты Bronze, Silver и Gold в порядке возрастания цены.
func Tiers(audienceSize *int) []entity.BenefitTier {
	base := BasePrice(audienceSize)
	tiers := make([]entity.BenefitTier, 0, len(tierTemplates))
	for _, tpl := range tierTemplates {
		tiers = append(tiers, entity.BenefitTier{
			Name:     tpl.name,
			Price:    valueobject.RoundToCents(base * tpl.multiplier),
			Benefits: append([]string{}, tpl.benefits...),
		})
	}
	return tiers
}

// TierNames возвращает названия пакетов по порядку.
func TierNames() []string {
	names := make([]string, 0, len(tierTemplates))
	for _, tpl := range tierTemplates {
		names = append(names, tpl.name)
	}
	return names
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
