package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/liftstats/internal/config"
	"github.com/2beens/liftstats/internal/db"
	"github.com/2beens/liftstats/internal/fitness/analytics"
	"github.com/2beens/liftstats/internal/fitness/insights"
	"github.com/2beens/liftstats/internal/fitness/library"
	"github.com/2beens/liftstats/internal/fitness/profile"
	"github.com/2beens/liftstats/internal/fitness/records"
	"github.com/2beens/liftstats/internal/fitness/reports"
	"github.com/2beens/liftstats/internal/fitness/workouts"
	"github.com/2beens/liftstats/internal/middleware"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	clock       analytics.Clock

	libraryStore    *library.Store
	firestoreClient *firestore.Client     // nil when saved reports are disabled
	insightModel    *insights.GeminiModel // nil when no api key is set
	reportScheduler *reports.Scheduler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
	RedisPassword           string
	GeminiAPIKey            string
	GoogleCloudProject      string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}
	if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("liftstats", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "liftstats-backend", rdb)
	if err != nil {
		return nil, err
	}

	libraryStore := library.NewStore(
		library.NewRepo(dbPool),
		time.Duration(cfg.LibraryCacheTTLSeconds)*time.Second,
	)
	if err := libraryStore.Seed(ctx); err != nil {
		log.Errorf("failed to seed exercise library: %s", err)
	}

	s := &Server{
		config:       cfg,
		dbPool:       dbPool,
		redisClient:  rdb,
		clock:        analytics.SystemClock{},
		versionInfo:  params.VersionInfo,
		libraryStore: libraryStore,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if cfg.FirestoreEnabled {
		if params.GoogleCloudProject == "" {
			log.Warnln("firestore enabled, but GOOGLE_CLOUD_PROJECT not set; saved reports disabled")
		} else {
			s.firestoreClient, err = firestore.NewClient(ctx, params.GoogleCloudProject)
			if err != nil {
				return nil, fmt.Errorf("new firestore client: %w", err)
			}
		}
	}

	if params.GeminiAPIKey != "" {
		s.insightModel, err = insights.NewGeminiModel(ctx, params.GeminiAPIKey, cfg.InsightTemperature, cfg.InsightMaxTokens)
		if err != nil {
			return nil, fmt.Errorf("new insight model: %w", err)
		}
	} else {
		log.Warnln("GEMINI_API_KEY not set, insights disabled")
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("liftstats-router"))

	workoutsRepo := workouts.NewRepo(s.dbPool)
	profileRepo := profile.NewRepo(s.dbPool)
	recordsRepo := records.NewRepo(s.dbPool)
	findingsCache := analytics.NewFindingsCache(
		s.redisClient,
		time.Duration(s.config.FindingsCacheTTLMinutes)*time.Minute,
		s.clock,
	)

	workoutsHandler := workouts.NewHandler(workoutsRepo, findingsCache, s.metricsManager)
	r.HandleFunc("/users/{uid}/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-workout")
	r.HandleFunc("/users/{uid}/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/users/{uid}/workouts/{date}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/users/{uid}/workouts/{date}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")

	profileHandler := profile.NewHandler(profileRepo, findingsCache)
	r.HandleFunc("/users/{uid}/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/users/{uid}/profile", profileHandler.HandlePut).Methods("PUT", "OPTIONS").Name("put-profile")

	recordsHandler := records.NewHandler(records.NewService(recordsRepo, profileRepo, s.libraryStore))
	r.HandleFunc("/users/{uid}/records", recordsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-record")
	r.HandleFunc("/users/{uid}/records", recordsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-records")
	r.HandleFunc("/users/{uid}/records/current", recordsHandler.HandleCurrent).Methods("GET", "OPTIONS").Name("current-records")
	r.HandleFunc("/users/{uid}/records/{id}", recordsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-record")
	r.HandleFunc("/users/{uid}/records/{id}", recordsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-record")

	libraryHandler := library.NewHandler(s.libraryStore)
	r.HandleFunc("/library", libraryHandler.HandleList).Methods("GET", "OPTIONS").Name("list-library")
	r.HandleFunc("/library", libraryHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-library")
	r.HandleFunc("/library", libraryHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-library")
	r.HandleFunc("/library/{id}", libraryHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-library")

	analyticsService := analytics.NewService(analytics.ServiceDeps{
		Logs:           workoutsRepo,
		Records:        recordsRepo,
		Profiles:       profileRepo,
		Library:        s.libraryStore,
		Cache:          findingsCache,
		Clock:          s.clock,
		MetricsManager: s.metricsManager,
	})
	analyticsHandler := analytics.NewHandler(analyticsService)
	r.HandleFunc("/users/{uid}/analytics/imbalances", analyticsHandler.HandleImbalances).Methods("GET", "OPTIONS").Name("imbalances")
	r.HandleFunc("/users/{uid}/analytics/e1rm", analyticsHandler.HandleE1RM).Methods("GET", "OPTIONS").Name("e1rm")
	r.HandleFunc("/users/{uid}/analytics/trend", analyticsHandler.HandleTrend).Methods("GET", "OPTIONS").Name("trend")
	r.HandleFunc("/users/{uid}/analytics/best-pr", analyticsHandler.HandleBestPR).Methods("GET", "OPTIONS").Name("best-pr")
	r.HandleFunc("/users/{uid}/analytics/strength-level", analyticsHandler.HandleStrengthLevel).Methods("GET", "OPTIONS").Name("strength-level")

	if s.firestoreClient != nil {
		reportsService := reports.NewService(
			analyticsService,
			reports.NewFirestoreStore(s.firestoreClient),
			s.metricsManager,
		)
		reportsHandler := reports.NewHandler(reportsService)
		r.HandleFunc("/users/{uid}/analytics/imbalances/report", reportsHandler.HandleSave).Methods("POST", "OPTIONS").Name("save-report")
		r.HandleFunc("/users/{uid}/analytics/imbalances/report", reportsHandler.HandleLatest).Methods("GET", "OPTIONS").Name("latest-report")

		if s.config.ReportSnapshotSchedule != "" {
			var err error
			s.reportScheduler, err = reports.NewScheduler(
				s.config.ReportSnapshotSchedule,
				workoutsRepo,
				reportsService,
				s.clock.Now,
			)
			if err != nil {
				return nil, err
			}
		}
	}

	var insightsHandler *insights.Handler
	if s.insightModel != nil {
		insightsHandler = insights.NewHandler(
			analyticsService,
			insights.NewGenerator(s.insightModel, s.config.InsightModels, s.metricsManager),
		)
	} else {
		insightsHandler = insights.NewHandler(analyticsService, nil)
	}
	r.HandleFunc("/users/{uid}/analytics/imbalances/insight", insightsHandler.HandleInsight).Methods("GET", "OPTIONS").Name("insight")

	r.HandleFunc("/version", s.handleVersion).Methods("GET", "OPTIONS").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, map[string]string{"version": s.versionInfo}, http.StatusOK)
}

func (s *Server) Serve(host string, port int) {
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

	if s.reportScheduler != nil {
		s.reportScheduler.Start()
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.reportScheduler != nil {
		s.reportScheduler.Stop()
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.insightModel != nil {
		if err := s.insightModel.Close(); err != nil {
			log.Errorf("failed to close insight model client: %s", err)
		}
	}

	if s.firestoreClient != nil {
		if err := s.firestoreClient.Close(); err != nil {
			log.Errorf("failed to close firestore client: %s", err)
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
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
