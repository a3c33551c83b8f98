package tracking_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/infrastructure/memory"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/tracking"
	"github.com/ignatzorin/sponsorship-backend/internal/validation"
)

func TestLogInteraction_DefaultsToNote(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	uc := tracking.NewLogInteractionUseCase(store.Interactions())

	interaction, err := uc.Execute(ctx, "any-sponsor", "", "Left a voicemail")
	require.NoError(t, err)
	assert.NotEmpty(t, interaction.ID)
	assert.Equal(t, valueobject.InteractionTypeNote, interaction.Type)

	_, err = uc.Execute(ctx, "any-sponsor", "fax", "x")
	assert.True(t, apperror.IsValidation(err))

	_, err = uc.Execute(ctx, "", "call", "x")
	assert.True(t, apperror.IsValidation(err))

	_, err = uc.Execute(ctx, "any-sponsor", "call", strings.Repeat("a", validation.MaxContentLength+1))
	assert.True(t, apperror.IsValidation(err))
}

func TestLogInteraction_AcceptsEmptyContent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	uc := tracking.NewLogInteractionUseCase(store.Interactions())

	for _, content := range []string{"", "   "} {
		interaction, err := uc.Execute(ctx, "any-sponsor", "call", content)
		require.NoError(t, err)
		assert.Equal(t, content, interaction.Content)
	}
}

func TestListInteractions_NewestFirst(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	logUC := tracking.NewLogInteractionUseCase(store.Interactions())

	for _, content := range []string{"intro email", "call back", "meeting booked"} {
		_, err := logUC.Execute(ctx, "s-1", "email", content)
		require.NoError(t, err)
	}

	history, err := tracking.NewListInteractionsUseCase(store.Interactions()).Execute(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "meeting booked", history[0].Content)

	empty, err := tracking.NewListInteractionsUseCase(store.Interactions()).Execute(ctx, "s-2")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestScheduleFollowUp(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	uc := tracking.NewScheduleFollowUpUseCase(store.FollowUps())

	due := time.Date(2025, 6, 1, 9, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	note := "send deck"
	followUp, err := uc.Execute(ctx, "unknown-sponsor", due, &note)
	require.NoError(t, err)
	assert.NotEmpty(t, followUp.ID)
	assert.True(t, followUp.DueDate.Equal(due))
	assert.Equal(t, time.UTC, followUp.DueDate.Location())

	_, err = uc.Execute(ctx, "s-1", time.Time{}, nil)
	assert.True(t, apperror.IsValidation(err))
}
