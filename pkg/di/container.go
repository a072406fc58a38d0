package di

import (
	"taskflow/application/serviceimpl"
	"taskflow/domain/repositories"
	"taskflow/domain/services"
	"taskflow/infrastructure/postgres"
	redispkg "taskflow/infrastructure/redis"
	"taskflow/interfaces/api/handlers"
	"taskflow/interfaces/api/middleware"
	"taskflow/pkg/config"
	"taskflow/pkg/logger"
	"taskflow/pkg/scheduler"
	"taskflow/pkg/utils"

	"gorm.io/gorm"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // optional, backs the login limiter
	TokenManager   *utils.TokenManager
	EventScheduler scheduler.EventScheduler
	LoginCounter   middleware.Counter

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	UserService services.UserService
	TaskService services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initDeadlineWatcher(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional. Without it the login limiter falls back to
	// in-process counters.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (using in-process counters)", "error", err)
		} else {
			c.RedisClient = redisClient
		}
	}

	if c.RedisClient != nil {
		c.LoginCounter = c.RedisClient
	} else {
		c.LoginCounter = middleware.NewMemoryCounter()
	}

	c.TokenManager = utils.NewTokenManager(c.Config.JWT.Secret, c.Config.JWT.TTL)

	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.TokenManager)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository)
}

func (c *Container) initDeadlineWatcher() error {
	if !c.Config.Watcher.Enabled {
		logger.Info("Deadline watcher disabled")
		return nil
	}

	watcher := serviceimpl.NewDeadlineWatcherService(
		serviceimpl.DeadlineWatcherConfig{Interval: c.Config.Watcher.Interval},
		c.TaskRepository,
		c.EventScheduler,
	)

	if err := watcher.RegisterWatcherJob(); err != nil {
		logger.Warn("Failed to register deadline watcher job", "error", err)
		return nil
	}

	logger.Info("Deadline watcher job registered", "interval", c.Config.Watcher.Interval.String())
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Info("Event scheduler stopped")
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService: c.UserService,
		TaskService: c.TaskService,
	}
}
