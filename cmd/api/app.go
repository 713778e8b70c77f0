package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gestorpro/internal/adapter/auth"
	"gestorpro/internal/adapter/dni"
	"gestorpro/internal/adapter/gemini"
	"gestorpro/internal/adapter/livequery"
	"gestorpro/internal/adapter/persistence/memstore"
	"gestorpro/internal/adapter/persistence/repository"
	"gestorpro/internal/adapter/redisstore"
	"gestorpro/internal/adapter/storage"
	"gestorpro/internal/adapter/whatsapp"
	"gestorpro/internal/config"
	"gestorpro/internal/infrastructure/database"
	"gestorpro/internal/infrastructure/messaging"
	"gestorpro/internal/infrastructure/payments"
	"gestorpro/internal/logging"
	"gestorpro/internal/metrics"
	"gestorpro/internal/session"
	"gestorpro/internal/usecase"
	"gestorpro/internal/usecase/interfaces"
)

// stores groups the persistence ports of one driver.
type stores struct {
	records  interfaces.IRecordStore
	orgs     interfaces.IOrganizationRepository
	users    interfaces.IUserRepository
	identity interfaces.IIdentityProvider
}

type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	loc      *time.Location
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	nats  *messaging.Connection
	redis *redis.Client

	tokens   *auth.TokenIssuer
	sessions *session.Registry
	audit    *usecase.AuditLogger

	auth         *usecase.Auth
	records      *usecase.RecordManager
	documents    *usecase.DocumentManager
	contracts    *usecase.ContractManager
	transitions  *usecase.StatusTransitions
	assistant    *usecase.AIAssistant
	dashboard    *usecase.Dashboard
	reports      *usecase.FinancialReports
	activity     *usecase.ActivityLog
	team         *usecase.Team
	settings     *usecase.Settings
	integrations *usecase.Integrations
	portal       *usecase.Portal
	checkout     *usecase.RentCheckout
	reminders    *usecase.ReminderJob
}

func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func openStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (stores, error) {
	if cfg.Store.Driver == "memory" {
		logger.Warn("using the in-memory store; data is lost on restart")
		return stores{
			records:  memstore.NewStore(),
			orgs:     memstore.NewOrganizations(),
			users:    memstore.NewUsers(),
			identity: memstore.NewIdentities(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, cfg.DynamoDB)
	if err != nil {
		return stores{}, fmt.Errorf("connect dynamodb: %w", err)
	}
	return stores{
		records:  repository.NewRecordDynamoRepository(ddb, cfg.DynamoDB.RecordsTable, logger),
		orgs:     repository.NewOrganizationDynamoRepository(ddb, cfg.DynamoDB.OrganizationsTable),
		users:    repository.NewUserDynamoRepository(ddb, cfg.DynamoDB.UsersTable),
		identity: repository.NewIdentityDynamoRepository(ddb, cfg.DynamoDB.IdentitiesTable),
	}, nil
}

// newApp connects every backing service and builds the use cases. Optional
// integrations that are not configured are left nil and fail per call.
func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger, loc: loc, registry: prometheus.NewRegistry()}
	a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.metrics = metrics.NewMetrics(a.registry)

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	a.nats, err = messaging.Connect(cfg.NATS, logger)
	if err != nil {
		return nil, err
	}
	publisher := livequery.NewPublisher(a.nats.Conn)
	store := livequery.NewPublishingStore(st.records, publisher, logger)
	feed := livequery.NewSnapshotFeed(a.nats.Conn, st.records, st.orgs, logger)

	a.redis, err = redisstore.Connect(ctx, cfg.Redis)
	if err != nil {
		a.Close()
		return nil, err
	}
	var (
		ledger interfaces.IReminderLedger
		queue  interfaces.IAuditRetryQueue
	)
	if a.redis != nil {
		ledger = redisstore.NewReminderLedger(a.redis)
		queue = redisstore.NewAuditRetryQueue(a.redis)
	} else {
		logger.Warn("redis not configured; reminders are not deduplicated and failed audit entries are dropped")
	}

	objects, err := openObjectStorage(ctx, cfg.Minio, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	var gateway interfaces.IPaymentGateway
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken.Value(), cfg.GatewayMockEnabled(), logger)
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = gw
	}

	sender := whatsapp.NewTwilioSender(cfg.Twilio, logger)
	generator := gemini.NewClient(cfg.Gemini, logger)
	lookup := dni.NewClient(cfg.DNI)

	a.tokens = auth.NewTokenIssuer(cfg.Auth.JWTSecret.Value(), cfg.Auth.TokenTTL)
	a.sessions = session.NewRegistry(feed, session.NewBroker(session.DefaultConfirmTimeout, a.metrics), session.DefaultToastTTL, a.metrics, logger)
	a.audit = usecase.NewAuditLogger(store, queue, a.metrics, logger).WithBatch(cfg.Audit.RetryBatch)

	a.auth = usecase.NewAuth(st.orgs, st.users, st.identity, a.tokens, a.sessions, logger)
	a.records = usecase.NewRecordManager(store, objects, st.identity, st.users, a.audit, logger)
	a.documents = usecase.NewDocumentManager(store, objects, a.audit, logger)
	a.contracts = usecase.NewContractManager(store, a.audit, logger)
	a.transitions = usecase.NewStatusTransitions(store, sender, a.audit, logger)
	a.assistant = usecase.NewAIAssistant(st.orgs, store, generator, a.metrics, logger)
	a.dashboard = usecase.NewDashboard(store, loc, logger)
	a.reports = usecase.NewFinancialReports(store, logger)
	a.activity = usecase.NewActivityLog(store)
	a.team = usecase.NewTeam(st.identity, st.users, a.audit, logger)
	a.settings = usecase.NewSettings(st.orgs, publisher, logger)
	a.integrations = usecase.NewIntegrations(lookup, sender, logger)
	a.portal = usecase.NewPortal(st.orgs, store, logger)
	a.checkout = usecase.NewRentCheckout(store, gateway, a.transitions, usecase.CheckoutOptions{
		Mock:            cfg.GatewayMockEnabled(),
		Sandbox:         strings.HasPrefix(cfg.MercadoPago.AccessToken.Value(), "TEST-"),
		TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
		TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
	}, logger)
	a.reminders = usecase.NewReminderJob(st.orgs, store, sender, ledger, loc, cfg.Reminders.Concurrency, a.metrics, logger)
	return a, nil
}

func openObjectStorage(ctx context.Context, cfg config.MinioConfig, logger *zap.Logger) (interfaces.IObjectStorage, error) {
	ms, err := storage.NewMinioStorage(cfg, logger)
	if errors.Is(err, storage.ErrStorageNotConfigured) {
		logger.Warn("object storage not configured; uploads are disabled")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := ms.EnsureBucket(ctx); err != nil {
		logger.Warn("bucket check failed; uploads may fail", zap.Error(err))
	}
	return ms, nil
}

// Close releases connections in reverse order of creation.
func (a *app) Close() {
	if a.sessions != nil {
		a.sessions.CloseAll()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.nats != nil {
		a.nats.Close()
	}
	_ = a.logger.Sync()
}
