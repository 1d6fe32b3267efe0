package api

import (
	"net/http"

	"github.com/Domenick1991/traveldesk/internal/service/reports"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	service reports.ReportUseCase
}

func NewAnalyticsHandler(service reports.ReportUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) Register(router *gin.RouterGroup) {
	router.GET("/:report", h.run)
}

func (h *AnalyticsHandler) run(c *gin.Context) {
	report, err := h.service.Run(c.Request.Context(), c.Param("report"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
