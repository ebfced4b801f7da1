package container

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/config"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	blogHandler "portfolio-backend/internal/domains/blog/handler"
	blogRepo "portfolio-backend/internal/domains/blog/repository"
	blogService "portfolio-backend/internal/domains/blog/service"
	contactHandler "portfolio-backend/internal/domains/contact/handler"
	contactRepo "portfolio-backend/internal/domains/contact/repository"
	contactService "portfolio-backend/internal/domains/contact/service"
	dashboardHandler "portfolio-backend/internal/domains/dashboard/handler"
	projectHandler "portfolio-backend/internal/domains/project/handler"
	projectRepo "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"
	userHandler "portfolio-backend/internal/domains/user/handler"
	userRepo "portfolio-backend/internal/domains/user/repository"
	userService "portfolio-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every long-lived dependency of the application and is
// the root of the dependency graph. Everything here is a singleton built
// once at startup.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	ProjectRepo projectRepo.ProjectRepository
	BlogRepo    blogRepo.BlogPostRepository
	ContactRepo contactRepo.ContactRepository
	UserRepo    userRepo.UserRepository

	// Services
	ProjectService projectService.ServiceInterface
	BlogService    blogService.ServiceInterface
	ContactService contactService.ServiceInterface
	UserService    userService.ServiceInterface

	// Handlers
	ProjectHandler   *projectHandler.ProjectHandler
	BlogHandler      *blogHandler.BlogHandler
	ContactHandler   *contactHandler.ContactHandler
	UserHandler      *userHandler.UserHandler
	DashboardHandler *dashboardHandler.DashboardHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the whole dependency graph in order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Config depends on nothing and everything depends on it.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// Database: connect with a bounded startup timeout, then verify.
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// Redis backs the abuse counters only, so a failed connection is
	// logged and the server starts anyway.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Ping(context.Background()); err != nil {
		logger.Warn("redis unavailable, abuse counters fail open", map[string]interface{}{"error": err.Error()})
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ProjectRepo = projectRepo.NewPostgresProjectRepository(pool)
	c.BlogRepo = blogRepo.NewPostgresBlogPostRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresContactRepository(pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
}

func (c *Container) initServices() {
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo)
	c.BlogService = blogService.NewBlogService(c.BlogRepo)
	c.ContactService = contactService.NewContactService(c.ContactRepo)
	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.JWTManager,
		c.Cache,
		c.Config.Admin.Email,
	)
}

func (c *Container) initHandlers() {
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(
		c.ProjectService,
		c.BlogService,
		c.ContactService,
	)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases infrastructure connections during shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis client", map[string]interface{}{"error": err.Error()})
		}
	}
}
