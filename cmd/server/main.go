package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignatzorin/sponsorship-backend/internal/config"
	"github.com/ignatzorin/sponsorship-backend/internal/db"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/repository"
	httpRouter "github.com/ignatzorin/sponsorship-backend/internal/http/router"
	"github.com/ignatzorin/sponsorship-backend/internal/infrastructure/memory"
	"github.com/ignatzorin/sponsorship-backend/internal/infrastructure/mongostore"
	"github.com/ignatzorin/sponsorship-backend/internal/infrastructure/persistence"
	"github.com/ignatzorin/sponsorship-backend/internal/infrastructure/render"
	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/handler"
	"github.com/ignatzorin/sponsorship-backend/internal/logger"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/dashboard"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/outreach"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/proposal"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/sponsor"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/tracking"
	"github.com/ignatzorin/sponsorship-backend/migrations"
)

// repositories — набор адаптеров выбранного драйвера хранилища.
type repositories struct {
	proposals    repository.ProposalRepository
	sponsors     repository.SponsorRepository
	interactions repository.InteractionRepository
	followUps    repository.FollowUpRepository
	probe        handler.StoreProbe
	close        func()
}

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.LogLevel)
	if cfg.IsDevelopment() {
		logger.SetTextFormatter()
	}
	log := logger.Component("main")

	repos, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("ошибка подключения к хранилищу: %v", err)
	}
	defer repos.close()

	// Use cases.
	generateProposalUC := proposal.NewGenerateProposalUseCase(repos.proposals)
	exportProposalUC := proposal.NewExportProposalUseCase(render.NewPDFRenderer())
	getProposalUC := proposal.NewGetProposalUseCase(repos.proposals)

	findSponsorsUC := sponsor.NewFindSponsorsUseCase(sponsor.NewSeedMatcher())
	createSponsorUC := sponsor.NewCreateSponsorUseCase(repos.sponsors)
	listSponsorsUC := sponsor.NewListSponsorsUseCase(repos.sponsors, cfg.SponsorListLimit)
	getSponsorUC := sponsor.NewGetSponsorUseCase(repos.sponsors)
	updateStatusUC := sponsor.NewUpdateSponsorStatusUseCase(repos.sponsors)
	addNoteUC := sponsor.NewAddSponsorNoteUseCase(repos.sponsors)

	logInteractionUC := tracking.NewLogInteractionUseCase(repos.interactions)
	listInteractionsUC := tracking.NewListInteractionsUseCase(repos.interactions)
	scheduleFollowUpUC := tracking.NewScheduleFollowUpUseCase(repos.followUps)

	overviewUC := dashboard.NewOverviewUseCase(repos.sponsors, repos.followUps)
	composeEmailUC := outreach.NewComposeEmailUseCase(repos.sponsors)

	// HTTP хэндлеры.
	proposalHandler := handler.NewProposalHandler(generateProposalUC, exportProposalUC, getProposalUC)
	sponsorHandler := handler.NewSponsorHandler(findSponsorsUC, createSponsorUC, listSponsorsUC, getSponsorUC, updateStatusUC, addNoteUC)
	trackingHandler := handler.NewTrackingHandler(logInteractionUC, listInteractionsUC, scheduleFollowUpUC)
	dashboardHandler := handler.NewDashboardHandler(overviewUC)
	outreachHandler := handler.NewOutreachHandler(composeEmailUC)
	healthHandler := handler.NewHealthHandler(cfg.StoreDriver, repos.probe)

	engine := httpRouter.SetupRouter(cfg, proposalHandler, sponsorHandler, trackingHandler, dashboardHandler, outreachHandler, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("ошибка остановки http сервера")
		}
	}()

	log.WithField("port", cfg.HTTPPort).WithField("store", cfg.StoreDriver).Info("HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("сервер завершился с ошибкой: %v", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (*repositories, error) {
	log := logger.Component("main")

	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, err := db.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		store := mongostore.NewStore(client.Database(cfg.MongoDatabase))
		return &repositories{
			proposals:    store.Proposals,
			sponsors:     store.Sponsors,
			interactions: store.Interactions,
			followUps:    store.FollowUps,
			probe:        db.MongoProbe{Client: client},
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.WithError(err).Error("ошибка отключения от mongo")
				}
			},
		}, nil

	case config.StoreDriverMemory:
		log.Warn("используется in-memory хранилище, данные не сохраняются между перезапусками")
		store := memory.NewStore()
		return &repositories{
			proposals:    store.Proposals(),
			sponsors:     store.Sponsors(),
			interactions: store.Interactions(),
			followUps:    store.FollowUps(),
			probe:        store,
			close:        func() {},
		}, nil

	default:
		conn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(ctx, conn, migrations.FS); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return &repositories{
			proposals:    persistence.NewProposalRepositoryAdapter(conn),
			sponsors:     persistence.NewSponsorRepositoryAdapter(conn),
			interactions: persistence.NewInteractionRepositoryAdapter(conn),
			followUps:    persistence.NewFollowUpRepositoryAdapter(conn),
			probe:        db.PostgresProbe{DB: conn},
			close: func() {
				if err := conn.Close(); err != nil {
					log.WithError(err).Error("ошибка закрытия базы")
				}
			},
		}, nil
	}
}
