package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/roommate-finder/docs"
	"github.com/sbilibin2017/roommate-finder/internal/handlers"
	"github.com/sbilibin2017/roommate-finder/internal/logger"
	"github.com/sbilibin2017/roommate-finder/internal/middlewares"
	"github.com/sbilibin2017/roommate-finder/internal/repositories"
	"github.com/sbilibin2017/roommate-finder/internal/schema"
	"github.com/sbilibin2017/roommate-finder/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// PostgresConfig holds the database connection settings.
type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
	Migrate      bool // Apply the embedded schema on start
}

// RedisConfig holds the view cache connection settings.
type RedisConfig struct {
	Enabled      bool
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
}

// Config is the complete server configuration.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	Postgres PostgresConfig
	Redis    RedisConfig

	RoomCacheTTL time.Duration

	KafkaBrokers []string // Empty disables event publishing
	KafkaTopic   string

	RoomsDefaultLimit    int
	RoomsMaxLimit        int
	AggregateConcurrency int
}

// @title roommate-finder API
// @version 1.0.0
// @description Room listings, roommate profiles and the aggregated room view
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka and listing configuration.
func parseConfig(path string) (cfg Config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getBool := func(key, defaultValue string) (bool, error) {
		v, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.Postgres.User = getEnv("POSTGRES_USER", "user")
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", "password")
	cfg.Postgres.DB = getEnv("POSTGRES_DB", "database")
	if cfg.Postgres.Port, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.Postgres.MaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.Postgres.MaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}
	if cfg.Postgres.Migrate, err = getBool("POSTGRES_MIGRATE", "true"); err != nil {
		return
	}

	// Redis config
	if cfg.Redis.Enabled, err = getBool("REDIS_ENABLED", "true"); err != nil {
		return
	}
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	if cfg.Redis.PoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.Redis.MinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	var ttl int
	if ttl, err = getInt("ROOM_CACHE_TTL_SECOND", "30"); err != nil {
		return
	}
	cfg.RoomCacheTTL = time.Duration(ttl) * time.Second

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "roommate-events")

	// Listing config
	if cfg.RoomsDefaultLimit, err = getInt("ROOMS_DEFAULT_LIMIT", "100"); err != nil {
		return
	}
	if cfg.RoomsMaxLimit, err = getInt("ROOMS_MAX_LIMIT", "1000"); err != nil {
		return
	}
	if cfg.AggregateConcurrency, err = getInt("AGGREGATE_CONCURRENCY", "8"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if cfg.Postgres.Migrate {
		if err := schema.Apply(ctx, db); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	// Connect to Redis
	var viewCache services.RoomViewCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		viewCache = repositories.NewRoomViewCacheRepository(rdb, cfg.RoomCacheTTL, middlewares.AfterCommit)
	} else {
		log.Info("Redis disabled, room views are not cached")
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := newKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer w.Close()
		kafkaWriter = w
		log.Infof("Publishing events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	roomReadRepo := repositories.NewRoomReadRepository(db)
	roomWriteRepo := repositories.NewRoomWriteRepository(db, middlewares.GetTxFromContext)
	locationRepo := repositories.NewLocationRepository(db)

	// Initialize services
	events := services.NewEventPublisher(kafkaWriter)
	userService := services.NewUserService(userReadRepo, userWriteRepo, roomReadRepo, viewCache, events)
	roomService := services.NewRoomService(roomReadRepo, roomWriteRepo, viewCache, events, cfg.AggregateConcurrency)
	locationService := services.NewLocationService(locationRepo)

	limits := handlers.Limits{Default: cfg.RoomsDefaultLimit, Max: cfg.RoomsMaxLimit}
	swaggerURL := fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)
	r := newRouter(db, userService, roomService, locationService, limits, swaggerURL)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter builds the event writer. Writes are synchronous, so the
// batch is flushed after a short wait instead of the library's one second.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           services.PublishTimeout,
		AllowAutoTopicCreation: true,
	}
}

// newRouter mounts the API routes. Amenity replacement runs inside a
// request transaction.
func newRouter(
	db *sqlx.DB,
	users *services.UserService,
	rooms *services.RoomService,
	locations *services.LocationService,
	limits handlers.Limits,
	swaggerURL string,
) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.RecoverMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", handlers.NewListUsersHandler(users, limits))
			r.Post("/", handlers.NewRegisterHandler(users))
			r.Post("/login", handlers.NewLoginHandler(users))
			r.Get("/{id}", handlers.NewGetUserHandler(users))
			r.Put("/{id}", handlers.NewUpdateUserHandler(users))
			r.Delete("/{id}", handlers.NewDeleteUserHandler(users))
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", handlers.NewListRoomsHandler(rooms, limits))
			r.Post("/", handlers.NewCreateRoomHandler(rooms))
			r.Get("/{id}", handlers.NewGetRoomHandler(rooms))
			r.Put("/{id}", handlers.NewUpdateRoomHandler(rooms))
			r.Delete("/{id}", handlers.NewDeleteRoomHandler(rooms))
			r.With(middlewares.TxMiddleware(db)).Put("/{id}/amenities", handlers.NewReplaceAmenitiesHandler(rooms))
			r.Post("/{id}/photos", handlers.NewAddPhotoHandler(rooms))
			r.Put("/{id}/members/{userID}", handlers.NewSetMemberHandler(rooms))
		})

		r.Route("/locations", func(r chi.Router) {
			r.Post("/", handlers.NewCreateLocationHandler(locations))
			r.Get("/{id}", handlers.NewGetLocationHandler(locations))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
