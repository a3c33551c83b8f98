package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/infrastructure/memory"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/dashboard"
)

type mockSponsorRepo struct {
	repository.SponsorRepository
	mock.Mock
}

func (m *mockSponsorRepo) CountByStatus(ctx context.Context, status valueobject.SponsorStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

type mockFollowUpRepo struct {
	repository.FollowUpRepository
	mock.Mock
}

func (m *mockFollowUpRepo) FindUpcoming(ctx context.Context, limit int) ([]*entity.FollowUp, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FollowUp), args.Error(1)
}

func TestOverview_CountsAllStatuses(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	for _, status := range []valueobject.SponsorStatus{
		valueobject.SponsorStatusNew, valueobject.SponsorStatusNew, valueobject.SponsorStatusConfirmed,
	} {
		sponsor, err := entity.NewSponsor("S", "Retail", "Austin")
		require.NoError(t, err)
		sponsor.Status = status
		require.NoError(t, store.Sponsors().Create(ctx, sponsor))
	}
	for i := 7; i > 0; i-- {
		followUp, err := entity.NewFollowUp("s", now.AddDate(0, 0, i), nil, now)
		require.NoError(t, err)
		require.NoError(t, store.FollowUps().Create(ctx, followUp))
	}

	overview := dashboard.NewOverviewUseCase(store.Sponsors(), store.FollowUps()).Execute(ctx)

	assert.False(t, overview.Degraded)
	assert.Len(t, overview.Counts, 6)
	assert.Equal(t, 2, overview.Counts[valueobject.SponsorStatusNew])
	assert.Equal(t, 1, overview.Counts[valueobject.SponsorStatusConfirmed])
	assert.Equal(t, 0, overview.Counts[valueobject.SponsorStatusDeclined])
	require.Len(t, overview.UpcomingFollowUps, dashboard.UpcomingLimit)
	assert.Equal(t, now.AddDate(0, 0, 1), overview.UpcomingFollowUps[0].DueDate)
}

func TestOverview_EmptyStore(t *testing.T) {
	store := memory.NewStore()

	overview := dashboard.NewOverviewUseCase(store.Sponsors(), store.FollowUps()).Execute(context.Background())

	assert.Len(t, overview.Counts, 6)
	for _, count := range overview.Counts {
		assert.Zero(t, count)
	}
	assert.NotNil(t, overview.UpcomingFollowUps)
	assert.Empty(t, overview.UpcomingFollowUps)
}

func TestOverview_DegradesOnStoreErrors(t *testing.T) {
	sponsors := new(mockSponsorRepo)
	followUps := new(mockFollowUpRepo)
	ctx := context.Background()

	sponsors.On("CountByStatus", ctx, valueobject.SponsorStatusPending).Return(0, errors.New("timeout"))
	sponsors.On("CountByStatus", ctx, mock.Anything).Return(3, nil)
	followUps.On("FindUpcoming", ctx, dashboard.UpcomingLimit).Return(nil, errors.New("timeout"))

	overview := dashboard.NewOverviewUseCase(sponsors, followUps).Execute(ctx)

	assert.True(t, overview.Degraded)
	assert.Len(t, overview.Counts, 6)
	assert.Equal(t, 0, overview.Counts[valueobject.SponsorStatusPending])
	assert.Equal(t, 3, overview.Counts[valueobject.SponsorStatusNew])
	assert.Empty(t, overview.UpcomingFollowUps)
}
