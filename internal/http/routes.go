package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "taskboard.com/taskboard/internal/http/middlewares"
)

// Register wires the API routes. The URL layout follows the board client
// contract: tasks and board settings live under /api/board-tasks, contacts
// and auth are separate collaborators.
func Register(e *echo.Echo, h *Handler, verifier middleware.TokenVerifier, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	auth := e.Group("/api/auth")
	auth.POST("/registration/", h.Register)
	auth.POST("/login/", h.Login)

	board := e.Group("/api/board-tasks", middleware.OptionalAuth(verifier))
	board.GET("/tasks/", h.ListTasks)
	board.POST("/tasks/", h.CreateTask)
	board.GET("/tasks/:id/", h.GetTask)
	board.PATCH("/tasks/:id/", h.UpdateTask)
	board.DELETE("/tasks/:id/", h.DeleteTask)
	board.GET("/board-settings/:userId/", h.GetBoardSettings)
	board.POST("/board-settings/", h.CreateBoardSettings)
	board.PUT("/board-settings/:userId/", h.UpdateBoardSettings)

	contacts := e.Group("/api/contacts", middleware.RequireAuth(verifier))
	contacts.GET("/", h.ListContacts)
	contacts.POST("/", h.CreateContact)
}
