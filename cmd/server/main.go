package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"krishi/config"
	"krishi/database"
	"krishi/router"

	authCtrlImp "krishi/pkg/auth/controllerImp"
	healthCtrlImp "krishi/pkg/health/controllerImp"
	planCtrlImp "krishi/pkg/plan/controllerImp"
	planRepoImp "krishi/pkg/plan/repositoryImp"
	planSvc "krishi/pkg/plan/serviceImp"
	schedCtrlImp "krishi/pkg/schedule/controllerImp"

	"krishi/pkg/ai"
	"krishi/pkg/generator"
	"krishi/pkg/rules"
)

func main() {
	// 1) Config
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	defer logger.Sync()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Generative plan service (mock fallback when unconfigured)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		logger.Info("no LLM endpoint configured, using mock plan generator")
		llm = ai.NewMock()
	}
	external := generator.NewExternal(llm, time.Duration(cfg.GenTimeoutSec)*time.Second)

	// 5) Heuristic generator with optional crop-table overrides
	overrides := map[string]int{}
	if cfg.CropTableXLSX != "" {
		if m, err := generator.LoadMaturityOverrides(cfg.CropTableXLSX); err != nil {
			logger.Warn("crop table not loaded", zap.String("path", cfg.CropTableXLSX), zap.Error(err))
		} else {
			overrides = m
		}
	}
	heuristic := generator.NewHeuristic(overrides)

	// 6) Engine + service + controllers
	engine := rules.New(logger)
	pRepo := planRepoImp.New(db)
	pSvc := planSvc.NewPlanService(pRepo, engine, external, heuristic, cfg.Country, logger)

	plCtrl := planCtrlImp.NewPlanCtrl(pSvc)
	scCtrl := schedCtrlImp.New(pSvc)
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, cfg.EnableAuth, plCtrl, scCtrl, authCtrl, hCtrl)

	// 8) Start
	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
