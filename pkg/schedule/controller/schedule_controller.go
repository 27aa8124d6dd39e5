package controller

import "github.com/labstack/echo/v4"

// ScheduleController serves derived task instances. There is no repository
// behind it: instances are recomputed from plan rules on every query.
type ScheduleController interface {
	ListRange(c echo.Context) error
	ListOnDate(c echo.Context) error
	Upcoming(c echo.Context) error
}
