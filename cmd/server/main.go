package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/JoelCaquene/saudi-aramco/internal/config"
	"github.com/JoelCaquene/saudi-aramco/internal/infrastructure/repositories"
	"github.com/JoelCaquene/saudi-aramco/internal/interfaces/http/handlers"
	"github.com/JoelCaquene/saudi-aramco/internal/interfaces/http/middleware"
	"github.com/JoelCaquene/saudi-aramco/internal/usecases"
	"github.com/JoelCaquene/saudi-aramco/pkg/jwt"
	"github.com/JoelCaquene/saudi-aramco/pkg/lock"
	"github.com/JoelCaquene/saudi-aramco/pkg/logger"
	"github.com/JoelCaquene/saudi-aramco/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	levelRepo := repositories.NewLevelRepository(db)
	userLevelRepo := repositories.NewUserLevelRepository(db)
	depositRepo := repositories.NewDepositRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	rouletteRepo := repositories.NewRouletteRepository(db)
	bankDetailsRepo := repositories.NewBankDetailsRepository(db)
	platformBankRepo := repositories.NewPlatformBankDetailsRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	uow := repositories.NewUnitOfWork(db)

	locker := lock.NewAccountLocker()

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	levelUsecase := usecases.NewLevelUsecase(userRepo, levelRepo, userLevelRepo, uow, locker, cfg.Business)
	taskUsecase := usecases.NewTaskUsecase(userRepo, userLevelRepo, taskRepo, uow, locker, cfg.Business)
	depositUsecase := usecases.NewDepositUsecase(userRepo, depositRepo, uow)
	withdrawalUsecase := usecases.NewWithdrawalUsecase(userRepo, withdrawalRepo, bankDetailsRepo, uow, locker, cfg.Business)
	rouletteUsecase := usecases.NewRouletteUsecase(userRepo, rouletteRepo, settingsRepo, uow, locker, cfg.Business)
	teamUsecase := usecases.NewTeamUsecase(userRepo, userLevelRepo, taskRepo, cfg.Business)
	incomeUsecase := usecases.NewIncomeUsecase(userRepo, userLevelRepo, depositRepo, withdrawalRepo, taskRepo)
	profileUsecase := usecases.NewProfileUsecase(userRepo, userLevelRepo, bankDetailsRepo)
	settingsUsecase := usecases.NewSettingsUsecase(settingsRepo, platformBankRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	levelHandler := handlers.NewLevelHandler(levelUsecase)
	taskHandler := handlers.NewTaskHandler(taskUsecase)
	depositHandler := handlers.NewDepositHandler(depositUsecase)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalUsecase)
	rouletteHandler := handlers.NewRouletteHandler(rouletteUsecase)
	teamHandler := handlers.NewTeamHandler(teamUsecase, incomeUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	platformHandler := handlers.NewPlatformHandler(settingsUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		levelHandler:      levelHandler,
		taskHandler:       taskHandler,
		depositHandler:    depositHandler,
		withdrawalHandler: withdrawalHandler,
		rouletteHandler:   rouletteHandler,
		teamHandler:       teamHandler,
		profileHandler:    profileHandler,
		platformHandler:   platformHandler,
		authMiddleware:    authMiddleware,
	})

	log.Printf("🚀 Saudi Aramco backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
