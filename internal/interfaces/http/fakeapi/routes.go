package fakeapi

import (
	"github.com/gin-gonic/gin"

	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
	"github.com/onlyfix/admin/internal/interfaces/http/middleware"
	"github.com/onlyfix/admin/internal/shared/logger"
)

// NewRouter mounts the admin API under /api.
func NewRouter(store *Store, log logger.Interface) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.Recovery(log), middleware.RequestLogger(log))

	handler := NewHandler(store, log)
	auth := middleware.NewAuthMiddleware(store, log)

	api := engine.Group("/api")
	api.GET("/health", handler.Health)
	api.POST("/login", handler.Login)

	protected := api.Group("")
	protected.Use(auth.RequireAuth())
	{
		protected.POST("/logout", handler.Logout)
		protected.GET("/user", handler.CurrentUser)

		users := protected.Group("/users")
		users.GET("", handler.ListUsers)
		users.POST("", handler.CreateUser)
		users.GET("/:id", handler.GetUser)
		users.PUT("/:id", handler.UpdateUser)
		users.DELETE("/:id", handler.DeleteUser)

		cars := protected.Group("/cars")
		cars.GET("", handler.ListCars)
		cars.POST("", handler.CreateCar)
		cars.GET("/:id", handler.GetCar)
		cars.PUT("/:id", handler.UpdateCar)
		cars.DELETE("/:id", handler.DeleteCar)

		problems := protected.Group("/problems")
		problems.GET("", handler.ListProblems)
		problems.POST("", handler.CreateProblem)
		problems.GET("/statistics", handler.ProblemStatistics)
		problems.GET("/:id", handler.GetProblem)
		problems.PUT("/:id", handler.UpdateProblem)
		problems.DELETE("/:id", handler.DeleteProblem)

		tickets := protected.Group("/tickets")
		tickets.GET("", handler.ListTickets)
		tickets.POST("", handler.CreateTicket)
		tickets.GET("/statistics", handler.TicketStatistics)
		tickets.GET("/:id", handler.GetTicket)
		tickets.PUT("/:id", handler.UpdateTicket)
		tickets.DELETE("/:id", handler.DeleteTicket)
		for _, action := range []vo.Action{vo.ActionAccept, vo.ActionStart, vo.ActionComplete, vo.ActionClose} {
			tickets.POST("/:id/"+string(action), handler.Transition(action))
		}
	}

	return engine
}
