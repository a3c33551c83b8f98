package outreach_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
	"github.com/ignatzorin/sponsorship-backend/internal/infrastructure/memory"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/outreach"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/proposal"
)

const partnerBody = "Hello there,\n\n" +
	"I'm reaching out to explore a potential sponsorship partnership. " +
	"Based on your focus in your industry, we believe there's strong alignment with our audience.\n\n" +
	"Happy to send a tailored proposal and discuss options (Bronze, Silver, Gold) suited to your goals.\n\n" +
	"Best regards,\nYour Name"

type failingSponsorRepo struct {
	repository.SponsorRepository
	mock.Mock
}

func (m *failingSponsorRepo) FindByID(ctx context.Context, id string) (*entity.Sponsor, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

func TestComposeEmail_KnownSponsor(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	sponsor, err := entity.NewSponsor("City Fitness", "Health & Wellness", "Austin")
	require.NoError(t, err)
	require.NoError(t, store.Sponsors().Create(ctx, sponsor))

	email, err := outreach.NewComposeEmailUseCase(store.Sponsors()).Execute(ctx, outreach.ComposeEmailInput{
		SponsorID: sponsor.ID,
		Tone:      "friendly",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sponsorship Opportunity: City Fitness x Our Event", email.Subject)
	assert.Contains(t, email.Body, "Hello City Fitness,\n\n")
	assert.Contains(t, email.Body, "Based on your focus in Health & Wellness, we believe")
	assert.Contains(t, email.Body, "(Bronze, Silver, Gold)")
}

func TestComposeEmail_PartnerFallback(t *testing.T) {
	store := memory.NewStore()
	uc := outreach.NewComposeEmailUseCase(store.Sponsors())
	ctx := context.Background()

	for name, id := range map[string]string{
		"empty":     "",
		"malformed": "not-an-id",
		"missing":   "3b241101-e2bb-4255-8caf-4136c566a962",
	} {
		t.Run(name, func(t *testing.T) {
			email, err := uc.Execute(ctx, outreach.ComposeEmailInput{SponsorID: id})
			require.NoError(t, err)
			assert.Equal(t, "Sponsorship Opportunity: Partner x Our Event", email.Subject)
			assert.Equal(t, partnerBody, email.Body)
		})
	}
}

func TestComposeEmail_StoreUnavailableFallsBack(t *testing.T) {
	repo := new(failingSponsorRepo)
	ctx := context.Background()
	repo.On("FindByID", ctx, "abc").Return(nil, errors.New("connection reset"))

	email, err := outreach.NewComposeEmailUseCase(repo).Execute(ctx, outreach.ComposeEmailInput{SponsorID: "abc"})
	require.NoError(t, err)
	assert.Equal(t, partnerBody, email.Body)
}

func TestComposeEmail_ToneDoesNotChangeTemplate(t *testing.T) {
	uc := outreach.NewComposeEmailUseCase(memory.NewStore().Sponsors())
	ctx := context.Background()

	var bodies []string
	for _, tone := range []string{"", "professional", "friendly", "concise"} {
		email, err := uc.Execute(ctx, outreach.ComposeEmailInput{Tone: tone})
		require.NoError(t, err)
		bodies = append(bodies, email.Body)
	}
	for _, body := range bodies {
		assert.Equal(t, bodies[0], body)
	}

	_, err := uc.Execute(ctx, outreach.ComposeEmailInput{Tone: "sarcastic"})
	assert.True(t, apperror.IsValidation(err))
}

func TestComposeEmail_OptionsFollowProposalTiers(t *testing.T) {
	email, err := outreach.NewComposeEmailUseCase(memory.NewStore().Sponsors()).Execute(context.Background(), outreach.ComposeEmailInput{})
	require.NoError(t, err)

	p, err := proposal.Synthesize(entity.ProposalInput{Title: "Fest", Description: "Music"})
	require.NoError(t, err)

	names := make([]string, 0, len(p.Tiers))
	for _, tier := range p.Tiers {
		names = append(names, tier.Name)
	}
	assert.Equal(t, proposal.TierNames(), names)
	assert.Contains(t, email.Body, "discuss options ("+strings.Join(names, ", ")+") suited")
}
