package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	CleanupExpired(c echo.Context) error
}
