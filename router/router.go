package router

import (
	"github.com/labstack/echo/v4"

	"krishi/pkg/middleware"
)

func New(
	e *echo.Echo,
	enableAuth bool,
	planCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		CleanupExpired(echo.Context) error
	},
	schedCtrl interface {
		ListRange(echo.Context) error
		ListOnDate(echo.Context) error
		Upcoming(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	if enableAuth {
		e.Use(middleware.RequireUser(true))
	} else {
		e.Use(middleware.DevLogin())
	}

	e.GET("/health", healthCtrl.Health)
	e.GET("/whoami", authCtrl.WhoAmI)
	e.GET("/devlogin", authCtrl.DevLogin)

	e.POST("/plans", planCtrl.Create)
	e.DELETE("/plans/expired", planCtrl.CleanupExpired)
	e.GET("/plans/:id", planCtrl.Get)

	e.GET("/plans/:id/tasks", schedCtrl.ListRange)
	e.GET("/plans/:id/tasks/:date", schedCtrl.ListOnDate)
	e.GET("/tasks/upcoming", schedCtrl.Upcoming)

	return e
}
