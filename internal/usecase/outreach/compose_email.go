package outreach

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/logger"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/proposal"
)

const (
	fallbackCompany  = "Partner"
	fallbackGreeting = "there"
	fallbackIndustry = "your industry"
)

const bodyTemplate = "Hello %s,\n\n" +
	"I'm reaching out to explore a potential sponsorship partnership. " +
	"Based on your focus in %s, we believe there's strong alignment with our audience.\n\n" +
	"Happy to send a tailored proposal and discuss options (%s) suited to your goals.\n\n" +
	"Best regards,\nYour Name"

type ComposeEmailInput struct {
	SponsorID  string
	Tone       string
	ProposalID *string
}

type Email struct {
	Subject string
	Body    string
}

// ComposeEmailUseCase собирает письмо по шаблону. Отсутствующий или
// недоступный спонсор не является ошибкой: письмо адресуется "Partner".
type ComposeEmailUseCase struct {
	sponsorRepo repository.SponsorRepository
	log         *logrus.Entry
}

func NewComposeEmailUseCase(sponsorRepo repository.SponsorRepository) *ComposeEmailUseCase {
	return &ComposeEmailUseCase{
		sponsorRepo: sponsorRepo,
		log:         logger.Component("outreach"),
	}
}

func (uc *ComposeEmailUseCase) Execute(ctx context.Context, input ComposeEmailInput) (*Email, error) {
	// Тон проверяется, но шаблон пока общий.
	if _, err := valueobject.NewOutreachTone(input.Tone); err != nil {
		return nil, err
	}

	company, greeting, industry := fallbackCompany, fallbackGreeting, fallbackIndustry

	if strings.TrimSpace(input.SponsorID) != "" {
		sponsor, err := uc.sponsorRepo.FindByID(ctx, input.SponsorID)
		switch {
		case err != nil:
			uc.log.WithError(err).WithField("sponsor_id", input.SponsorID).Debug("спонсор для письма не найден")
		case sponsor != nil:
			company = sponsor.Name
			greeting = sponsor.Name
			if sponsor.Industry != "" {
				industry = sponsor.Industry
			}
		}
	}

	return &Email{
		Subject: fmt.Sprintf("Sponsorship Opportunity: %s x Our Event", company),
		Body:    fmt.Sprintf(bodyTemplate, greeting, industry, strings.Join(proposal.TierNames(), ", ")),
	}, nil
}
