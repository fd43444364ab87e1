package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every endpoint handler the API exposes
type Handlers struct {
	Health     *HealthCheckHandler
	Analytics  *AnalyticsHandler
	Simulation *SimulationHandler
	Narrative  *NarrativeHandler
}

// RegisterRoutes mounts the API on e. Middleware is installed by the caller.
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	ai := e.Group("/ai")

	ai.POST("/spend/insights", h.Analytics.DetectSpikes)
	ai.POST("/spend/movers", h.Analytics.RankMovers)
	ai.POST("/spend/overview", h.Analytics.Overview)
	ai.POST("/subscriptions/detect", h.Analytics.DetectSubscriptions)

	ai.POST("/untouchable/forecast", h.Simulation.ForecastUntouchable)
	ai.POST("/credit/repayment", h.Simulation.CreditRepayment)
	ai.POST("/insurance/nudge", h.Simulation.InsuranceNudge)

	ai.POST("/narrative", h.Narrative.Narrate)
	ai.POST("/explain/untouchable", h.Narrative.ExplainUntouchable)
	ai.POST("/explain/credit", h.Narrative.ExplainCredit)
	ai.GET("/llm/health", h.Narrative.CollaboratorHealth)
	ai.GET("/llm/calls", h.Narrative.RecentCalls)
}
