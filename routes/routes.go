package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	controller "teampulse/controllers"
	"teampulse/middleware"
)

// SetupRoutes wires every operation onto the app. Route order matters for
// the /api/feedback subtree: literal segments must register before the
// catch-all /feedback/:id routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db, log.New(os.Stdout, "AUTH: ", log.LstdFlags))
	teamController := controller.NewTeamController(db, log.New(os.Stdout, "TEAM: ", log.LstdFlags))
	feedbackController := controller.NewFeedbackController(db, log.New(os.Stdout, "FEEDBACK: ", log.LstdFlags))
	commentController := controller.NewCommentController(db, log.New(os.Stdout, "COMMENT: ", log.LstdFlags))
	requestController := controller.NewRequestController(db, log.New(os.Stdout, "REQUEST: ", log.LstdFlags))
	statsController := controller.NewStatsController(db, log.New(os.Stdout, "STATS: ", log.LstdFlags))
	reportController := controller.NewReportController(db, log.New(os.Stdout, "REPORT: ", log.LstdFlags))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Credential endpoints, rate limited per client IP
	auth := api.Group("", middleware.AuthRateLimiter())
	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)

	// Everything below requires a valid token
	protected := api.Group("", middleware.Protected(db))

	// Directory
	protected.Get("/users", authController.GetUsers)
	protected.Get("/user/:id", authController.GetUser)
	protected.Get("/me", authController.GetCurrentUser)

	// Team management; mutations are manager-only
	protected.Post("/team", middleware.RequireManager(), teamController.AddTeamMember)
	protected.Delete("/team", middleware.RequireManager(), teamController.RemoveTeamMember)
	protected.Get("/team/members/:managerID", teamController.GetAvailableMembers)
	protected.Get("/team/:managerID", teamController.GetTeam)

	// Feedback lifecycle
	protected.Post("/feedback", middleware.RequireManager(), feedbackController.SubmitFeedback)
	protected.Post("/feedback/acknowledge", feedbackController.Acknowledge)
	protected.Get("/feedback/acknowledgements/:feedbackID", feedbackController.GetAcknowledgements)
	protected.Get("/feedback/employee/stats/:employeeID", statsController.GetEmployeeStats)
	protected.Get("/feedback/employee/:employeeID", feedbackController.ListEmployeeFeedback)
	protected.Get("/feedback/manager/:managerID", feedbackController.ListManagerFeedback)
	protected.Get("/feedback/stats/:managerID", statsController.GetManagerStats)
	protected.Get("/feedback/export/:id", reportController.ExportFeedback)

	// Feedback requests
	protected.Post("/feedback/request", requestController.CreateRequest)
	protected.Put("/feedback/request/:id", middleware.RequireManager(), requestController.UpdateRequestStatus)
	protected.Get("/feedback/requests/employee/:employeeID", requestController.ListEmployeeRequests)
	protected.Get("/feedback/requests/:managerID", requestController.ListManagerRequests)

	// Tags
	protected.Post("/feedback/tags", commentController.AddTag)
	protected.Get("/feedback/tags/:feedbackID", commentController.ListTags)
	protected.Delete("/feedback/tags/:tagID", commentController.DeleteTag)

	// Catch-all feedback id routes register last
	protected.Get("/feedback/:id", feedbackController.GetFeedback)
	protected.Put("/feedback/:id", middleware.RequireManager(), feedbackController.EditFeedback)
	protected.Delete("/feedback/:id", middleware.RequireManager(), feedbackController.DeleteFeedback)

	// Comments
	protected.Post("/comments", commentController.AddComment)
	protected.Get("/comments/:feedbackID", commentController.ListComments)

	// 404 fallthrough
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
