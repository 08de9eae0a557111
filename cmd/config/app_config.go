package config

import (
	"food-journal-backend/internal/api/handlers"
	"food-journal-backend/internal/api/routes"
	"food-journal-backend/internal/middleware"
	"food-journal-backend/internal/utils"
	"food-journal-backend/internal/utils/storage"
	"food-journal-backend/pkg/chat"
	"food-journal-backend/pkg/goal"
	"food-journal-backend/pkg/insights"
	"food-journal-backend/pkg/journal"
	"food-journal-backend/pkg/jwt"
	"food-journal-backend/pkg/quiz"
	"food-journal-backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	journalRepository := journal.NewJournalRepository(db)
	goalRepository := goal.NewGoalRepository(db)
	quizRepository := quiz.NewQuizRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	insightsService := insights.NewInsightsService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	journalService := journal.NewJournalService(journalRepository, insightsService)
	goalService := goal.NewGoalService(goalRepository, journalRepository)
	quizService := quiz.NewQuizService(quizRepository)
	chatService := chat.NewChatService()

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	journalHandler := handlers.NewJournalHandler(journalService, validator)
	goalHandler := handlers.NewGoalHandler(goalService, validator)
	quizHandler := handlers.NewQuizHandler(quizService, validator)
	chatHandler := handlers.NewChatHandler(chatService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		JournalHandler: journalHandler,
		GoalHandler:    goalHandler,
		QuizHandler:    quizHandler,
		ChatHandler:    chatHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
