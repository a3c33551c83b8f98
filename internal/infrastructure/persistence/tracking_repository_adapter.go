package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

type InteractionRepositoryAdapter struct {
	db *sqlx.DB
}

func NewInteractionRepositoryAdapter(db *sqlx.DB) *InteractionRepositoryAdapter {
	return &InteractionRepositoryAdapter{db: db}
}

func (r *InteractionRepositoryAdapter) Create(ctx context.Context, interaction *entity.Interaction) (err error) {
	defer observe("interaction.create", time.Now(), &err)

	id := uuid.New()
	query := `
		INSERT INTO interactions (id, sponsor_id, type, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.ExecContext(ctx, query,
		id, interaction.SponsorID, string(interaction.Type), interaction.Content, interaction.CreatedAt,
	)
	if err != nil {
		return apperror.Unavailable(err, "не удалось записать взаимодействие")
	}

	interaction.ID = id.String()
	return nil
}

func (r *InteractionRepositoryAdapter) FindBySponsorID(ctx context.Context, sponsorID string, limit int) (_ []*entity.Interaction, err error) {
	defer observe("interaction.find_by_sponsor", time.Now(), &err)

	var rows []interactionRow
	query := `
		SELECT id, sponsor_id, type, content, created_at
		FROM interactions WHERE sponsor_id = $1
		ORDER BY created_at DESC LIMIT $2
	`
	if err := r.db.SelectContext(ctx, &rows, query, sponsorID, limit); err != nil {
		return nil, apperror.Unavailable(err, "не удалось получить журнал взаимодействий")
	}

	result := make([]*entity.Interaction, len(rows))
	for i, row := range rows {
		result[i] = &entity.Interaction{
			ID:        row.ID.String(),
			SponsorID: row.SponsorID,
			Type:      valueobject.InteractionType(row.Type),
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
		}
	}
	return result, nil
}

type interactionRow struct {
	ID        uuid.UUID `db:"id"`
	SponsorID string    `db:"sponsor_id"`
	Type      string    `db:"type"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type FollowUpRepositoryAdapter struct {
	db *sqlx.DB
}

func NewFollowUpRepositoryAdapter(db *sqlx.DB) *FollowUpRepositoryAdapter {
	return &FollowUpRepositoryAdapter{db: db}
}

func (r *FollowUpRepositoryAdapter) Create(ctx context.Context, followUp *entity.FollowUp) (err error) {
	defer observe("followup.create", time.Now(), &err)

	id := uuid.New()
	query := `
		INSERT INTO followups (id, sponsor_id, due_date, note, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.ExecContext(ctx, query,
		id, followUp.SponsorID, followUp.DueDate, followUp.Note, followUp.CreatedAt,
	)
	if err != nil {
		return apperror.Unavailable(err, "не удалось запланировать follow-up")
	}

	followUp.ID = id.String()
	return nil
}

func (r *FollowUpRepositoryAdapter) FindUpcoming(ctx context.Context, limit int) (_ []*entity.FollowUp, err error) {
	defer observe("followup.find_upcoming", time.Now(), &err)

	var rows []followUpRow
	query := `
		SELECT id, sponsor_id, due_date, note, created_at
		FROM followups ORDER BY due_date ASC LIMIT $1
	`
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, apperror.Unavailable(err, "не удалось получить follow-up")
	}

	result := make([]*entity.FollowUp, len(rows))
	for i, row := range rows {
		result[i] = &entity.FollowUp{
			ID:        row.ID.String(),
			SponsorID: row.SponsorID,
			DueDate:   row.DueDate,
			Note:      row.Note,
			CreatedAt: row.CreatedAt,
		}
	}
	return result, nil
}

type followUpRow struct {
	ID        uuid.UUID `db:"id"`
	SponsorID string    `db:"sponsor_id"`
	DueDate   time.Time `db:"due_date"`
	Note      *string   `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}
