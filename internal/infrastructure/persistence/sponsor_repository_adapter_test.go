package persistence_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/infrastructure/persistence"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return sqlx.NewDb(conn, "postgres"), mock
}

func TestSponsorAdapter_InvalidIDSkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := persistence.NewSponsorRepositoryAdapter(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "not-a-uuid")
	assert.True(t, apperror.IsInvalidID(err))

	err = repo.UpdateStatus(ctx, "507f1f77bcf86cd799439011", valueobject.SponsorStatusConfirmed, time.Now())
	assert.True(t, apperror.IsInvalidID(err))

	err = repo.UpdateNotes(ctx, "", "note", time.Now())
	assert.True(t, apperror.IsInvalidID(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSponsorAdapter_FindByIDNoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := persistence.NewSponsorRepositoryAdapter(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM sponsors WHERE id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), id.String())
	assert.True(t, apperror.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSponsorAdapter_UpdateNoRowsAffected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := persistence.NewSponsorRepositoryAdapter(db)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sponsors SET status = $2")).
		WithArgs(id, "confirmed", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE sponsors SET notes = $2")).
		WithArgs(id, "call back", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(ctx, id.String(), valueobject.SponsorStatusConfirmed, time.Now())
	assert.True(t, apperror.IsNotFound(err))

	err = repo.UpdateNotes(ctx, id.String(), "call back", time.Now())
	assert.True(t, apperror.IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSponsorAdapter_UpdateOneRowAffected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := persistence.NewSponsorRepositoryAdapter(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sponsors SET status = $2")).
		WithArgs(id, "declined", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id.String(), valueobject.SponsorStatusDeclined, time.Now())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSponsorAdapter_DriverErrorsAreUnavailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := persistence.NewSponsorRepositoryAdapter(db)
	ctx := context.Background()
	id := uuid.New()
	connErr := errors.New("connection refused")

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sponsors SET status = $2")).
		WillReturnError(connErr)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM sponsors")).
		WithArgs("new").
		WillReturnError(connErr)

	err := repo.UpdateStatus(ctx, id.String(), valueobject.SponsorStatusNew, time.Now())
	assert.True(t, apperror.IsStoreUnavailable(err))
	assert.ErrorIs(t, err, connErr)

	_, err = repo.CountByStatus(ctx, valueobject.SponsorStatusNew)
	assert.True(t, apperror.IsStoreUnavailable(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalAdapter_InvalidIDAndNoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := persistence.NewProposalRepositoryAdapter(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "bad-id")
	assert.True(t, apperror.IsInvalidID(err))

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM proposals WHERE id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByID(ctx, id.String())
	assert.True(t, apperror.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
