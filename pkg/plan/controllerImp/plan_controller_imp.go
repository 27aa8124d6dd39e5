package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"krishi/pkg/plan/repository"
	"krishi/pkg/plan/service"
)

type PlanCtrl struct{ svc service.PlanService }

func NewPlanCtrl(svc service.PlanService) *PlanCtrl { return &PlanCtrl{svc: svc} }

func (h *PlanCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req service.CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	planID, err := h.svc.CreateOrReuse(c.Request().Context(), uid, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"plan_id": planID})
}

func (h *PlanCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	p, err := h.svc.GetPlan(uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "plan not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlanCtrl) CleanupExpired(c echo.Context) error {
	uid := c.Get("uid").(string)
	n, err := h.svc.CleanupExpired(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int64{"deleted": n})
}
