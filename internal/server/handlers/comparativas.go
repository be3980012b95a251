package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/service/comparativas"
)

// ComparativaHandler serves the aggregated financial report.
type ComparativaHandler struct {
	svc    *comparativas.Service
	logger *zap.Logger
}

// NewComparativaHandler constructs the comparatives HTTP adapter.
func NewComparativaHandler(svc *comparativas.Service, logger *zap.Logger) *ComparativaHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComparativaHandler{svc: svc, logger: logger}
}

// Get handles GET /comparativas.
func (h *ComparativaHandler) Get(c *gin.Context) {
	comparativa, err := h.svc.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("failed computing comparativas", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al calcular las comparativas"})
		return
	}

	c.JSON(http.StatusOK, comparativa)
}
