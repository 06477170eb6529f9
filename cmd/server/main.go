package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jobtimizer/jobtimizer/internal/config"
	"github.com/jobtimizer/jobtimizer/internal/domain/fiber/handler"
	applogger "github.com/jobtimizer/jobtimizer/internal/logger"
	"github.com/jobtimizer/jobtimizer/internal/middleware"
	"github.com/jobtimizer/jobtimizer/internal/model"
	"github.com/jobtimizer/jobtimizer/internal/repository"
	"github.com/jobtimizer/jobtimizer/internal/scoring"
	"github.com/jobtimizer/jobtimizer/internal/service"
	"github.com/jobtimizer/jobtimizer/internal/usecase"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zapLog, err := applogger.New(appConfig.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer zapLog.Sync()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB(zapLog)

	scoreRepo := repository.NewScoreRepository(db)
	occupationRepo := repository.NewOccupationRepository(db)
	userRepo := repository.NewUserRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	openAI := service.NewOpenAIService(zapLog)

	// The expert rubric and the vector search run over Gemini. Without
	// credentials the rubric stays unconfigured and never calls out.
	var expertCompleter scoring.Completer
	var embeddings service.EmbeddingProvider
	gemini, err := service.NewGeminiService(ctx, zapLog)
	if err != nil {
		zapLog.Warn("gemini not configured, expert scoring and occupation search disabled", zap.Error(err))
	} else {
		expertCompleter = gemini
		embeddings = gemini
	}

	stepstoneRubric := scoring.NewStepstoneRubric(openAI, zapLog)
	expertRubric := scoring.NewExpertRubric(expertCompleter, zapLog)

	scoringUC := usecase.NewScoringUsecase(scoreRepo, stepstoneRubric, expertRubric, zapLog)
	generationUC := usecase.NewGenerationUsecase(userRepo, occupationRepo, feedbackRepo, openAI, embeddings, zapLog)
	userUC := usecase.NewUserUsecase(userRepo, zapLog)

	handler.NewScoreHandler(scoringUC).RegisterRoutes(app)
	handler.NewGenerateHandler(generationUC).RegisterRoutes(app)
	handler.NewUserHandler(userUC).RegisterRoutes(app)

	zapLog.Info("server running", zap.String("port", appConfig.Port))
	if err := app.Listen(":" + appConfig.Port); err != nil {
		zapLog.Fatal("server stopped", zap.Error(err))
	}
}

func ConnectDB(zapLog *zap.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Europe/Berlin",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("could not connect to database", zap.Error(err))
	}
	pgDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("could not get database instance", zap.Error(err))
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(&model.JobAdScore{}, &model.Occupation{}, &model.User{}, &model.Feedback{})
	if err != nil {
		zapLog.Fatal("migration failed", zap.Error(err))
	}
	return db
}
