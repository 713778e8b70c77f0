package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "gestorpro/docs"
	"gestorpro/internal/adapter/http/handlers"
	"gestorpro/internal/adapter/http/middleware"
	"gestorpro/internal/logging"
	"gestorpro/internal/metrics"
	"gestorpro/internal/usecase/interfaces"
)

const readHeaderTimeout = 10 * time.Second

type Handlers struct {
	Auth         *handlers.AuthHandler
	Session      *handlers.SessionHandler
	Records      *handlers.RecordHandler
	Documents    *handlers.DocumentHandler
	Status       *handlers.StatusHandler
	AI           *handlers.AIHandler
	Reports      *handlers.ReportHandler
	Team         *handlers.TeamHandler
	Settings     *handlers.SettingsHandler
	Integrations *handlers.IntegrationHandler
	Portal       *handlers.PortalHandler
}

type Dependencies struct {
	Handlers Handlers
	Tokens   interfaces.ITokenIssuer
	Sessions middleware.SessionLookup
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// New builds the gin engine with every route of the API.
func New(deps Dependencies) *gin.Engine {
	deps.Logger = logging.OrNop(deps.Logger)
	router := gin.New()
	setMiddlewares(router, deps)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	addPingRoutes(router)

	getRoutes(router, deps)
	return router
}

// Run serves router on port until ctx is cancelled, then shuts down gracefully.
// onShutdown hooks run as soon as the shutdown starts, before open connections drain.
func Run(ctx context.Context, router http.Handler, port int, shutdownTimeout time.Duration, logger *zap.Logger, onShutdown ...func()) error {
	logger = logging.OrNop(logger)
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	for _, fn := range onShutdown {
		srv.RegisterOnShutdown(fn)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func getRoutes(router *gin.Engine, deps Dependencies) {
	h := deps.Handlers

	// Rotas publicas
	v1 := router.Group("/v1")
	addAuthRoutes(v1, h.Auth)

	// Rotas autenticadas
	private := v1.Group("")
	private.Use(middleware.Authenticate(deps.Tokens, deps.Sessions))
	private.POST(PathAuth+"/logout", h.Auth.Logout)
	addSessionRoutes(private, h.Session)
	addRecordRoutes(private, h.Records, h.Documents)
	addWorkflowRoutes(private, h.Status, h.Documents, h.AI)
	addAIRoutes(private, h.AI)
	addReportRoutes(private, h.Reports)
	addTeamRoutes(private, h.Team)
	addSettingsRoutes(private, h.Settings)
	addIntegrationRoutes(private, h.Integrations)
	addPortalRoutes(private, h.Portal, h.Documents, h.AI)
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(deps.Logger))
	router.Use(middleware.Metrics(deps.Metrics))
	router.Use(middleware.Recovery(deps.Logger))
}
