package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

const sponsorColumns = `id, name, industry, location, email, phone, website, status,
		proposal_id, notes, next_follow_up, created_at, updated_at`

type SponsorRepositoryAdapter struct {
	db *sqlx.DB
}

func NewSponsorRepositoryAdapter(db *sqlx.DB) *SponsorRepositoryAdapter {
	return &SponsorRepositoryAdapter{db: db}
}

func (r *SponsorRepositoryAdapter) Create(ctx context.Context, sponsor *entity.Sponsor) (err error) {
	defer observe("sponsor.create", time.Now(), &err)

	id := uuid.New()
	query := `
		INSERT INTO sponsors (` + sponsorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = r.db.ExecContext(ctx, query,
		id, sponsor.Name, sponsor.Industry, sponsor.Location,
		sponsor.Email, sponsor.Phone, sponsor.Website, string(sponsor.Status),
		sponsor.ProposalID, sponsor.Notes, sponsor.NextFollowUp,
		sponsor.CreatedAt, sponsor.UpdatedAt,
	)
	if err != nil {
		return apperror.Unavailable(err, "не удалось создать спонсора")
	}

	sponsor.ID = id.String()
	return nil
}

func (r *SponsorRepositoryAdapter) FindByID(ctx context.Context, id string) (_ *entity.Sponsor, err error) {
	defer observe("sponsor.find_by_id", time.Now(), &err)

	sponsorID, err := parseID(id, apperror.ErrInvalidSponsorID)
	if err != nil {
		return nil, err
	}

	var row sponsorRow
	query := `SELECT ` + sponsorColumns + ` FROM sponsors WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, sponsorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrSponsorNotFound
		}
		return nil, apperror.Unavailable(err, "не удалось получить спонсора")
	}
	return row.toEntity(), nil
}

func (r *SponsorRepositoryAdapter) List(ctx context.Context, filter repository.SponsorFilter) (_ []*entity.Sponsor, err error) {
	defer observe("sponsor.list", time.Now(), &err)

	var rows []sponsorRow
	if filter.Status != "" {
		query := `SELECT ` + sponsorColumns + ` FROM sponsors WHERE status = $1 ORDER BY created_at ASC LIMIT $2`
		err = r.db.SelectContext(ctx, &rows, query, filter.Status, filter.Limit)
	} else {
		query := `SELECT ` + sponsorColumns + ` FROM sponsors ORDER BY created_at ASC LIMIT $1`
		err = r.db.SelectContext(ctx, &rows, query, filter.Limit)
	}
	if err != nil {
		return nil, apperror.Unavailable(err, "не удалось получить список спонсоров")
	}
	return toSponsorEntities(rows), nil
}

func (r *SponsorRepositoryAdapter) UpdateStatus(ctx context.Context, id string, status valueobject.SponsorStatus, at time.Time) (err error) {
	defer observe("sponsor.update_status", time.Now(), &err)

	sponsorID, err := parseID(id, apperror.ErrInvalidSponsorID)
	if err != nil {
		return err
	}

	query := `UPDATE sponsors SET status = $2, updated_at = $3 WHERE id = $1`
	return r.execUpdate(ctx, query, sponsorID, string(status), at)
}

func (r *SponsorRepositoryAdapter) UpdateNotes(ctx context.Context, id string, notes string, at time.Time) (err error) {
	defer observe("sponsor.update_notes", time.Now(), &err)

	sponsorID, err := parseID(id, apperror.ErrInvalidSponsorID)
	if err != nil {
		return err
	}

	query := `UPDATE sponsors SET notes = $2, updated_at = $3 WHERE id = $1`
	return r.execUpdate(ctx, query, sponsorID, notes, at)
}

// execUpdate выполняет UPDATE одной строки; ноль затронутых строк означает NOT_FOUND.
func (r *SponsorRepositoryAdapter) execUpdate(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperror.Unavailable(err, "не удалось обновить спонсора")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.Unavailable(err, "не удалось обновить спонсора")
	}
	if affected == 0 {
		return apperror.ErrSponsorNotFound
	}
	return nil
}

func (r *SponsorRepositoryAdapter) CountByStatus(ctx context.Context, status valueobject.SponsorStatus) (_ int, err error) {
	defer observe("sponsor.count_by_status", time.Now(), &err)

	var count int
	query := `SELECT COUNT(*) FROM sponsors WHERE status = $1`
	if err := r.db.GetContext(ctx, &count, query, string(status)); err != nil {
		return 0, apperror.Unavailable(err, "не удалось посчитать спонсоров")
	}
	return count, nil
}

type sponsorRow struct {
	ID           uuid.UUID  `db:"id"`
	Name         string     `db:"name"`
	Industry     string     `db:"industry"`
	Location     string     `db:"location"`
	Email        *string    `db:"email"`
	Phone        *string    `db:"phone"`
	Website      *string    `db:"website"`
	Status       string     `db:"status"`
	ProposalID   *string    `db:"proposal_id"`
	Notes        *string    `db:"notes"`
	NextFollowUp *time.Time `db:"next_follow_up"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (s *sponsorRow) toEntity() *entity.Sponsor {
	return &entity.Sponsor{
		ID:           s.ID.String(),
		Name:         s.Name,
		Industry:     s.Industry,
		Location:     s.Location,
		Email:        s.Email,
		Phone:        s.Phone,
		Website:      s.Website,
		Status:       valueobject.SponsorStatus(s.Status),
		ProposalID:   s.ProposalID,
		Notes:        s.Notes,
		NextFollowUp: s.NextFollowUp,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toSponsorEntities(rows []sponsorRow) []*entity.Sponsor {
	result := make([]*entity.Sponsor, len(rows))
	for i := range rows {
		result[i] = rows[i].toEntity()
	}
	return result
}
