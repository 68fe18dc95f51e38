package internal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/treinorpg/backend/internal/auth"
	"github.com/treinorpg/backend/internal/config"
	"github.com/treinorpg/backend/internal/db"
	"github.com/treinorpg/backend/internal/middleware"
	"github.com/treinorpg/backend/internal/misc"
	"github.com/treinorpg/backend/internal/rpg"
	"github.com/treinorpg/backend/internal/rpg/achievements"
	"github.com/treinorpg/backend/internal/rpg/notify"
	"github.com/treinorpg/backend/internal/rpg/powerday"
	"github.com/treinorpg/backend/internal/rpg/progression"
	"github.com/treinorpg/backend/internal/rpg/records"
	"github.com/treinorpg/backend/internal/rpg/streak"
	"github.com/treinorpg/backend/internal/rpg/workout"
	"github.com/treinorpg/backend/internal/rpg/xp"
	"github.com/treinorpg/backend/internal/telemetry/metrics"
	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mobileAppSecret   string // used by the mobile app for the gamified routes
	versionInfo       string

	config        *config.Config
	dbPool        *pgxpool.Pool
	quotesManager *misc.QuotesManager

	redisClient  *redis.Client
	loginChecker auth.Checker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	MobileAppSecret         string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewPool(ctx, db.PoolParams{
		Host:           params.Config.PostgresHost,
		Port:           params.Config.PostgresPort,
		Database:       params.Config.PostgresDBName,
		MaxConns:       params.Config.PostgresMaxConns,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "treino_rpg_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("treinorpg", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "treino-rpg-backend", rdb)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:          params.Config,
		dbPool:          dbPool,
		mobileAppSecret: params.MobileAppSecret,
		versionInfo:     params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	quotesCsvFile, err := os.Open(params.Config.QuotesCsvPath)
	if err != nil {
		return nil, fmt.Errorf("open quotes file: %w", err)
	}
	defer func() {
		if err := quotesCsvFile.Close(); err != nil {
			log.Warnf("close quotes csv file: %s", err)
		}
	}()

	s.quotesManager, err = misc.NewQuoteManager(csv.NewReader(quotesCsvFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create quote manager: %s", err)
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("treino-rpg-router"))

	workoutRepo := workout.NewRepo(s.dbPool)
	historyService := workout.NewHistoryService(workoutRepo)
	progressionRepo := progression.NewRepo(s.dbPool)
	recordsRepo := records.NewRepo(s.dbPool)
	achievementsRepo := achievements.NewRepo(s.dbPool)

	powerDayAccountant := powerday.NewAccountant(
		workoutRepo,
		powerday.NewRepo(s.dbPool),
		s.config.PowerDaysPerWeek,
	)
	// streak preservation is backed by the profile's streak shield
	streakAccountant := streak.NewAccountant(progressionRepo)
	engine := xp.NewEngine(
		progressionRepo,
		powerDayAccountant,
		streakAccountant,
		s.config.DailyXPCap,
		s.config.PowerDayXPCap,
	)

	notifier := notify.NewNotifier(s.redisClient, s.config.NotificationsWebhookURL, s.metricsManager)
	rpgService := rpg.NewService(
		workoutRepo,
		progressionRepo,
		records.NewDetector(recordsRepo),
		recordsRepo,
		engine,
		achievements.NewEvaluator(achievementsRepo),
		achievements.NewTracker(achievementsRepo),
		notifier,
		historyService,
		progressionRepo,
		s.metricsManager,
	)
	rpgHandler := rpg.NewHandler(
		rpgService,
		progressionRepo,
		achievementsRepo,
		achievements.NewTracker(achievementsRepo),
		recordsRepo,
		historyService,
		powerDayAccountant,
	)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	r.HandleFunc("/workouts/complete", rpgHandler.HandleCompleteWorkout).Methods("POST", "OPTIONS").Name("complete-workout")
	r.HandleFunc("/progression", rpgHandler.HandleGetProgression).Methods("GET", "OPTIONS").Name("get-progression")
	r.HandleFunc("/achievements", rpgHandler.HandleListAchievements).Methods("GET", "OPTIONS").Name("list-achievements")
	r.HandleFunc("/achievements/stats", rpgHandler.HandleAchievementStats).Methods("GET", "OPTIONS").Name("achievement-stats")
	r.HandleFunc("/records", rpgHandler.HandleListRecords).Methods("GET", "OPTIONS").Name("list-records")
	r.HandleFunc("/exercise/{id}/history", rpgHandler.HandleExerciseHistory).Methods("GET", "OPTIONS").Name("exercise-history")
	r.HandleFunc("/powerday/availability", rpgHandler.HandlePowerDayAvailability).Methods("GET", "OPTIONS").Name("powerday-availability")

	manualSubrouter := r.PathPrefix("/workouts/manual").Subrouter()
	manualSubrouter.HandleFunc("", rpgHandler.HandleManualWorkout).Methods("POST", "OPTIONS").Name("manual-workout")
	manualSubrouter.Use(middleware.RateLimit(
		reqRateLimiter, "manual-workout",
		redis_rate.Limit{
			Rate:   s.config.ManualWorkoutsAllowedPerDay,
			Burst:  s.config.ManualWorkoutsAllowedPerDay,
			Period: 24 * time.Hour,
		},
		s.metricsManager,
	))

	miscHandler := misc.NewHandler(s.quotesManager, s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.mobileAppSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	var shutdownErr error
	if s.redisClient != nil {
		shutdownErr = multierr.Append(shutdownErr, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	shutdownErr = multierr.Append(shutdownErr, s.httpServer.Shutdown(ctx))
	shutdownErr = multierr.Append(shutdownErr, s.metricsHttpServer.Shutdown(ctx))
	if shutdownErr != nil {
		log.Errorf(" >>> graceful shutdown errors: %s", shutdownErr)
	}
	log.Warnln("server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
