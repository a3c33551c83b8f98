package sponsor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/sponsor"
)

func names(t *testing.T, location string, industries []string, limit int) []string {
	t.Helper()
	found, err := sponsor.NewSeedMatcher().Find(location, industries, limit)
	require.NoError(t, err)
	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.Name
	}
	return out
}

func TestMatcher_EmptyIndustriesReturnsCatalogInOrder(t *testing.T) {
	assert.Equal(t, []string{
		"City Fitness", "Brewed Awakenings", "Green Wheels Bikes", "Tech Hub Co-Work", "River Bank Credit",
	}, names(t, "Austin", nil, 10))
	assert.Equal(t, []string{"City Fitness", "Brewed Awakenings"}, names(t, "Austin", []string{}, 2))
}

func TestMatcher_IndustryFilter(t *testing.T) {
	assert.Equal(t, []string{"River Bank Credit"}, names(t, "Austin", []string{"Finance"}, 10))
	assert.Equal(t, []string{"Tech Hub Co-Work"}, names(t, "Austin", []string{"tech"}, 10))
	assert.Equal(t, []string{"City Fitness", "Brewed Awakenings"}, names(t, "Austin", []string{"HEALTH", "food"}, 10))
	assert.Empty(t, names(t, "Austin", []string{"Aerospace"}, 10))
}

func TestMatcher_Limits(t *testing.T) {
	assert.Empty(t, names(t, "Austin", nil, 0))

	_, err := sponsor.NewSeedMatcher().Find("Austin", nil, -1)
	assert.True(t, apperror.IsValidation(err))
}

func TestMatcher_CandidateFields(t *testing.T) {
	found, err := sponsor.NewSeedMatcher().Find("Portland, OR", []string{"Retail"}, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)

	c := found[0]
	assert.Empty(t, c.ID)
	assert.Equal(t, "Portland, OR", c.Location)
	assert.Equal(t, valueobject.SponsorStatusNew, c.Status)
	require.NotNil(t, c.Email)
	assert.Equal(t, "info@greenwheelsbikes.com", *c.Email)
	require.NotNil(t, c.Phone)
	assert.Equal(t, "(555) 123-4567", *c.Phone)
	require.NotNil(t, c.Website)
	assert.Equal(t, "https://greenwheels.example", *c.Website)
}

func TestSeedBusinesses_ReturnsCopy(t *testing.T) {
	catalog := sponsor.SeedBusinesses()
	catalog[0].Name = "Changed"

	assert.Equal(t, "City Fitness", sponsor.SeedBusinesses()[0].Name)
	assert.Equal(t, "City Fitness", names(t, "Austin", nil, 1)[0])
}

func TestFindSponsorsUseCase_RequiresLocation(t *testing.T) {
	uc := sponsor.NewFindSponsorsUseCase(sponsor.NewSeedMatcher())

	_, err := uc.Execute("  ", nil, 10)
	assert.True(t, apperror.IsValidation(err))

	found, err := uc.Execute("Austin", nil, sponsor.DefaultFindLimit)
	require.NoError(t, err)
	assert.Len(t, found, 5)
}
