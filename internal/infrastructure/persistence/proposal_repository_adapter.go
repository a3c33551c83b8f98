package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

type ProposalRepositoryAdapter struct {
	db *sqlx.DB
}

func NewProposalRepositoryAdapter(db *sqlx.DB) *ProposalRepositoryAdapter {
	return &ProposalRepositoryAdapter{db: db}
}

func (r *ProposalRepositoryAdapter) Create(ctx context.Context, proposal *entity.Proposal) (err error) {
	defer observe("proposal.create", time.Now(), &err)

	tiersJSON, err := json.Marshal(toTierRows(proposal.Tiers))
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось сериализовать пакеты")
	}

	objectives := proposal.Objectives
	if objectives == nil {
		objectives = []string{}
	}

	id := uuid.New()
	query := `
		INSERT INTO proposals (id, title, description, event_date, location, audience_summary,
		value_proposition, tiers, objectives, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.db.ExecContext(ctx, query,
		id, proposal.Title, proposal.Description, proposal.Date, proposal.Location,
		proposal.AudienceSummary, pq.Array(proposal.ValueProposition), tiersJSON,
		pq.Array(objectives), proposal.CreatedAt,
	)
	if err != nil {
		return apperror.Unavailable(err, "не удалось сохранить предложение")
	}

	proposal.ID = id.String()
	return nil
}

func (r *ProposalRepositoryAdapter) FindByID(ctx context.Context, id string) (_ *entity.Proposal, err error) {
	defer observe("proposal.find_by_id", time.Now(), &err)

	proposalID, err := parseID(id, apperror.ErrInvalidProposalID)
	if err != nil {
		return nil, err
	}

	var row proposalRow
	query := `
		SELECT id, title, description, event_date, location, audience_summary,
		value_proposition, tiers, objectives, created_at
		FROM proposals WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, proposalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrProposalNotFound
		}
		return nil, apperror.Unavailable(err, "не удалось получить предложение")
	}
	return row.toEntity()
}

type proposalRow struct {
	ID               uuid.UUID      `db:"id"`
	Title            string         `db:"title"`
	Description      string         `db:"description"`
	Date             *string        `db:"event_date"`
	Location         *string        `db:"location"`
	AudienceSummary  string         `db:"audience_summary"`
	ValueProposition pq.StringArray `db:"value_proposition"`
	Tiers            []byte         `db:"tiers"`
	Objectives       pq.StringArray `db:"objectives"`
	CreatedAt        time.Time      `db:"created_at"`
}

// tierRow — форма пакета внутри JSONB-колонки tiers.
type tierRow struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Benefits []string `json:"benefits"`
}

func (p *proposalRow) toEntity() (*entity.Proposal, error) {
	var tiers []tierRow
	if err := json.Unmarshal(p.Tiers, &tiers); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "повреждены данные пакетов")
	}

	proposal := &entity.Proposal{
		ID:               p.ID.String(),
		Title:            p.Title,
		Description:      p.Description,
		Date:             p.Date,
		Location:         p.Location,
		AudienceSummary:  p.AudienceSummary,
		ValueProposition: []string(p.ValueProposition),
		Objectives:       []string(p.Objectives),
		CreatedAt:        p.CreatedAt,
		Tiers:            make([]entity.BenefitTier, len(tiers)),
	}
	for i, tier := range tiers {
		proposal.Tiers[i] = entity.BenefitTier{Name: tier.Name, Price: tier.Price, Benefits: tier.Benefits}
	}
	if proposal.Objectives == nil {
		proposal.Objectives = []string{}
	}
	return proposal, nil
}

func toTierRows(tiers []entity.BenefitTier) []tierRow {
	rows := make([]tierRow, len(tiers))
	for i, tier := range tiers {
		rows[i] = tierRow{Name: tier.Name, Price: tier.Price, Benefits: tier.Benefits}
	}
	return rows
}
