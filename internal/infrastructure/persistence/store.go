package persistence

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/sponsorship-backend/internal/metrics"
	"github.com/ignatzorin/sponsorship-backend/internal/pkg/apperror"
)

const driverName = "postgres"

// parseID проверяет формат идентификатора до обращения к базе.
func parseID(id string, invalid *apperror.AppError) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, invalid
	}
	return parsed, nil
}

// observe пишет длительность операции в метрики.
func observe(operation string, start time.Time, err *error) {
	metrics.CollectStoreRequest(driverName, operation, *err, start)
}
