package dashboard

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
	"github.com/ignatzorin/sponsorship-backend/internal/logger"
	"github.com/ignatzorin/sponsorship-backend/internal/metrics"
)

// UpcomingLimit — сколько ближайших follow-up показывает дашборд.
const UpcomingLimit = 5

// Overview — сводка по воронке спонсоров.
type Overview struct {
	Counts            map[valueobject.SponsorStatus]int
	UpcomingFollowUps []*entity.FollowUp
	// Degraded выставляется, если часть данных заменена нулями из-за ошибки хранилища.
	Degraded bool
}

type OverviewUseCase struct {
	sponsorRepo  repository.SponsorRepository
	followUpRepo repository.FollowUpRepository
	log          *logrus.Entry
}

func NewOverviewUseCase(sponsorRepo repository.SponsorRepository, followUpRepo repository.FollowUpRepository) *OverviewUseCase {
	return &OverviewUseCase{
		sponsorRepo:  sponsorRepo,
		followUpRepo: followUpRepo,
		log:          logger.Component("dashboard"),
	}
}

// Execute никогда не возвращает ошибку: недоступное хранилище даёт нули и пустой список.
func (uc *OverviewUseCase) Execute(ctx context.Context) *Overview {
	overview := &Overview{
		Counts:            make(map[valueobject.SponsorStatus]int, len(valueobject.SponsorStatuses())),
		UpcomingFollowUps: []*entity.FollowUp{},
	}

	for _, status := range valueobject.SponsorStatuses() {
		count, err := uc.sponsorRepo.CountByStatus(ctx, status)
		if err != nil {
			uc.degrade(overview, "counts", err).WithField("status", status).Warn("не удалось посчитать спонсоров")
			count = 0
		}
		overview.Counts[status] = count
	}

	followUps, err := uc.followUpRepo.FindUpcoming(ctx, UpcomingLimit)
	if err != nil {
		uc.degrade(overview, "followups", err).Warn("не удалось получить ближайшие follow-up")
	} else if followUps != nil {
		overview.UpcomingFollowUps = followUps
	}

	return overview
}

func (uc *OverviewUseCase) degrade(overview *Overview, part string, err error) *logrus.Entry {
	overview.Degraded = true
	metrics.CollectDashboardDegraded(part)
	return uc.log.WithError(err).WithField("part", part)
}
