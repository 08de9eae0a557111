package routes

import (
	"food-journal-backend/internal/api/handlers"
	"food-journal-backend/internal/middleware"
	"food-journal-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	JournalHandler handlers.JournalHandler
	GoalHandler    handlers.GoalHandler
	QuizHandler    handlers.QuizHandler
	ChatHandler    handlers.ChatHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Journal()
	c.Goals()
	c.Quiz()
	c.Chat()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
	}
}

func (c *Config) Journal() {
	entries := c.App.Group("/api/v1/entries", c.Middleware.AuthMiddleware(c.JWTService))

	// Static paths must register before the :id routes
	entries.Get("/export", c.JournalHandler.ExportEntries)
	entries.Post("/bulk-delete", c.JournalHandler.BulkDeleteEntries)

	// Basic CRUD operations
	entries.Post("", c.JournalHandler.CreateEntry)
	entries.Get("", c.JournalHandler.GetEntries)
	entries.Get("/:id", c.JournalHandler.GetEntryDetails)
	entries.Delete("/:id", c.JournalHandler.DeleteEntry)
	entries.Post("/:id/insights", c.JournalHandler.GenerateInsights)
}

func (c *Config) Goals() {
	goals := c.App.Group("/api/v1/goals", c.Middleware.AuthMiddleware(c.JWTService))
	goals.Get("", c.GoalHandler.GetGoal)
	goals.Put("", c.GoalHandler.SaveGoal)
	goals.Get("/progress", c.GoalHandler.GetMonthlyProgress)
}

func (c *Config) Quiz() {
	quiz := c.App.Group("/api/v1/quiz", c.Middleware.AuthMiddleware(c.JWTService))
	quiz.Get("/questions", c.QuizHandler.GetQuestions)
	quiz.Post("", c.QuizHandler.SubmitQuiz)
	quiz.Get("/latest", c.QuizHandler.GetLatestResult)
}

func (c *Config) Chat() {
	chat := c.App.Group("/api/v1/chat", c.Middleware.AuthMiddleware(c.JWTService))
	chat.Get("/welcome", c.ChatHandler.GetWelcome)
	chat.Post("", c.ChatHandler.SendMessage)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
