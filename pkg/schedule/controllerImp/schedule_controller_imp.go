package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"krishi/pkg/plan/repository"
	"krishi/pkg/plan/service"
)

type SchedCtrl struct{ svc service.PlanService }

func New(svc service.PlanService) *SchedCtrl { return &SchedCtrl{svc: svc} }

func (h *SchedCtrl) ListRange(c echo.Context) error {
	uid := c.Get("uid").(string)
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if from == "" || to == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "from and to are required"})
	}
	out, err := h.svc.GetTasksInRange(uid, c.Param("id"), from, to, c.QueryParam("lang"))
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SchedCtrl) ListOnDate(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.svc.GetTasksOnDate(uid, c.Param("id"), c.Param("date"), c.QueryParam("lang"))
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SchedCtrl) Upcoming(c echo.Context) error {
	uid := c.Get("uid").(string)
	days := 7
	if v := c.QueryParam("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "days must be a non-negative integer"})
		}
		days = n
	}
	out, err := h.svc.GetUpcoming(uid, days, c.QueryParam("lang"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func taskError(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "plan not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
