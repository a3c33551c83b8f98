package sponsor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/infrastructure/memory"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/sponsor"
)

const missingID = "3b241101-e2bb-4255-8caf-4136c566a962"

func strPtr(s string) *string {
	return &s
}

func createSponsor(t *testing.T, store *memory.Store, input sponsor.CreateSponsorInput) string {
	t.Helper()
	created, err := sponsor.NewCreateSponsorUseCase(store.Sponsors()).Execute(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	return created.ID
}

func TestCreateSponsor_DefaultsAndValidation(t *testing.T) {
	store := memory.NewStore()
	uc := sponsor.NewCreateSponsorUseCase(store.Sponsors())
	ctx := context.Background()

	created, err := uc.Execute(ctx, sponsor.CreateSponsorInput{Name: "City Fitness", Industry: "Health", Location: "Austin"})
	require.NoError(t, err)
	assert.Equal(t, valueobject.SponsorStatusNew, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	cases := map[string]sponsor.CreateSponsorInput{
		"missing name":   {Industry: "Health", Location: "Austin"},
		"bad email":      {Name: "A", Industry: "B", Location: "C", Email: strPtr("nope")},
		"bad website":    {Name: "A", Industry: "B", Location: "C", Website: strPtr("ftp://x.example")},
		"unknown status": {Name: "A", Industry: "B", Location: "C", Status: "archived"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(ctx, input)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}

func TestSetStatus_RoundTripAndIdempotence(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	id := createSponsor(t, store, sponsor.CreateSponsorInput{Name: "Brewed", Industry: "Food", Location: "Austin"})

	setStatus := sponsor.NewUpdateSponsorStatusUseCase(store.Sponsors())
	get := sponsor.NewGetSponsorUseCase(store.Sponsors())

	require.NoError(t, setStatus.Execute(ctx, id, "pending"))
	got, err := get.Execute(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, valueobject.SponsorStatusPending, got.Status)
	firstUpdate := got.UpdatedAt

	require.NoError(t, setStatus.Execute(ctx, id, "pending"))
	got, err = get.Execute(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, valueobject.SponsorStatusPending, got.Status)
	assert.False(t, got.UpdatedAt.Before(firstUpdate))

	// Граф переходов не задан: из declined можно вернуться в new.
	require.NoError(t, setStatus.Execute(ctx, id, "declined"))
	require.NoError(t, setStatus.Execute(ctx, id, "new"))
}

func TestSetStatus_Errors(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	id := createSponsor(t, store, sponsor.CreateSponsorInput{Name: "Brewed", Industry: "Food", Location: "Austin"})
	uc := sponsor.NewUpdateSponsorStatusUseCase(store.Sponsors())

	assert.True(t, apperror.IsInvalidID(uc.Execute(ctx, "xyz", "pending")))
	assert.True(t, apperror.IsNotFound(uc.Execute(ctx, missingID, "pending")))
	assert.True(t, apperror.IsValidation(uc.Execute(ctx, id, "archived")))
	assert.True(t, apperror.IsValidation(uc.Execute(ctx, id, "")))
}

func TestAddNote_LastWriteWins(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	id := createSponsor(t, store, sponsor.CreateSponsorInput{Name: "Tech Hub", Industry: "Technology", Location: "Austin"})
	uc := sponsor.NewAddSponsorNoteUseCase(store.Sponsors())

	require.NoError(t, uc.Execute(ctx, id, "first"))
	require.NoError(t, uc.Execute(ctx, id, "second"))

	got, err := sponsor.NewGetSponsorUseCase(store.Sponsors()).Execute(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "second", *got.Notes)

	assert.True(t, apperror.IsInvalidID(uc.Execute(ctx, "12", "x")))
	assert.True(t, apperror.IsNotFound(uc.Execute(ctx, missingID, "x")))
}

func TestListSponsors_FilterAndCap(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	for _, name := range []string{"A", "B", "C"} {
		createSponsor(t, store, sponsor.CreateSponsorInput{Name: name, Industry: "Retail", Location: "Austin"})
	}
	createSponsor(t, store, sponsor.CreateSponsorInput{Name: "D", Industry: "Retail", Location: "Austin", Status: "confirmed"})

	all, err := sponsor.NewListSponsorsUseCase(store.Sponsors(), 0).Execute(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	capped, err := sponsor.NewListSponsorsUseCase(store.Sponsors(), 2).Execute(ctx, "")
	require.NoError(t, err)
	require.Len(t, capped, 2)
	assert.Equal(t, "A", capped[0].Name)

	confirmed, err := sponsor.NewListSponsorsUseCase(store.Sponsors(), 10).Execute(ctx, "confirmed")
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, "D", confirmed[0].Name)

	unknown, err := sponsor.NewListSponsorsUseCase(store.Sponsors(), 10).Execute(ctx, "archived")
	require.NoError(t, err)
	assert.Empty(t, unknown)
}
