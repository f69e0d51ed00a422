package app

import (
	"context"
	"fmt"
	"log"

	"naukri-api/config"
	"naukri-api/internal/cache"
	"naukri-api/internal/database"
	"naukri-api/internal/services"
	"naukri-api/internal/storage"
	"naukri-api/internal/storage/memory"
	"naukri-api/internal/storage/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Repositories groups one implementation of every storage interface.
type Repositories struct {
	Users        storage.UserRepository
	Jobs         storage.JobRepository
	Applications storage.ApplicationRepository
	Messages     storage.MessageRepository
	Interviews   storage.InterviewRepository
}

// MemoryRepositories builds repositories over a fresh in-memory store.
func MemoryRepositories() Repositories {
	store := memory.NewStore()
	return Repositories{
		Users:        memory.NewUserRepo(store),
		Jobs:         memory.NewJobRepo(store),
		Applications: memory.NewApplicationRepo(store),
		Messages:     memory.NewMessageRepo(store),
		Interviews:   memory.NewInterviewRepo(store),
	}
}

// PostgresRepositories builds repositories over a pgx pool.
func PostgresRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:        postgres.NewUserRepo(pool),
		Jobs:         postgres.NewJobRepo(pool),
		Applications: postgres.NewApplicationRepo(pool),
		Messages:     postgres.NewMessageRepo(pool),
		Interviews:   postgres.NewInterviewRepo(pool),
	}
}

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	Validator   *validator.Validate
	DBPool      *pgxpool.Pool // nil with the memory driver
	RedisClient *redis.Client // nil when no Redis address is configured

	Identity     services.IdentityService
	Jobs         services.JobService
	Applications services.ApplicationService
	Messages     services.MessageService
	Interviews   services.InterviewService
	Admin        services.AdminService
}

// New connects the configured backends and wires the services on top of them.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	a := &Application{Config: cfg}

	var repos Repositories
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := database.NewConnectionPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
		a.DBPool = pool
		repos = PostgresRepositories(pool)
	default:
		log.Println("Using in-memory storage; data is lost on restart")
		repos = MemoryRepositories()
	}

	var stats cache.StatsCache = cache.NopStatsCache{}
	if cfg.Redis.Addr != "" {
		rdb, err := database.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Printf("WARN: %v. Continuing without the stats cache.", err)
		} else {
			a.RedisClient = rdb
			stats = cache.NewRedisStatsCache(rdb, cfg.Redis.StatsTTL)
		}
	}

	loc, err := cfg.Jobs.Location()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.wire(repos, stats, services.NewCalendar(services.SystemClock, loc))
	return a, nil
}

// NewWithRepositories wires the services over the given repositories without connecting anything.
func NewWithRepositories(cfg *config.Config, repos Repositories, stats cache.StatsCache, cal services.Calendar) *Application {
	a := &Application{Config: cfg}
	a.wire(repos, stats, cal)
	return a
}

func (a *Application) wire(repos Repositories, stats cache.StatsCache, cal services.Calendar) {
	cfg := a.Config
	a.Validator = validator.New()
	a.Identity = services.NewUserService(repos.Users, stats, cfg.Security.BcryptCost, cal)
	a.Jobs = services.NewJobService(repos.Jobs, repos.Users, cal)
	a.Applications = services.NewApplicationService(repos.Applications, repos.Jobs, repos.Users, cal)
	a.Messages = services.NewMessageService(repos.Messages, repos.Users, cal, cfg.Messaging.RequireApproval)
	a.Interviews = services.NewInterviewService(repos.Interviews, repos.Jobs, repos.Users, cal)
	a.Admin = services.NewAdminService(repos.Users, repos.Jobs, repos.Applications, repos.Messages, repos.Interviews, stats, cal)
}

// Close releases the database pool and the Redis client.
func (a *Application) Close() {
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if a.DBPool != nil {
		a.DBPool.Close()
	}
}
