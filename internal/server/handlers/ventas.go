package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/domain/models"
	"github.com/sdiagne/ferreteria/internal/service/ventas"
)

// VentaHandler adapts the sales service to HTTP.
type VentaHandler struct {
	svc    *ventas.Service
	logger *zap.Logger
}

// NewVentaHandler constructs the sales HTTP adapter.
func NewVentaHandler(svc *ventas.Service, logger *zap.Logger) *VentaHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VentaHandler{svc: svc, logger: logger}
}

// Create handles POST /ventas.
func (h *VentaHandler) Create(c *gin.Context) {
	var in models.VentaCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid venta payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	venta, err := h.svc.Create(c.Request.Context(), in)
	if errors.Is(err, ventas.ErrClienteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Cliente no encontrado"})
		return
	}
	if err != nil {
		h.logger.Error("failed creating venta", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al registrar la venta"})
		return
	}

	c.JSON(http.StatusOK, venta)
}

// List handles GET /ventas.
func (h *VentaHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing ventas", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al obtener las ventas"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListByCliente handles GET /ventas/cliente/:id.
func (h *VentaHandler) ListByCliente(c *gin.Context) {
	result, err := h.svc.ListByCliente(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed listing ventas by cliente", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al obtener las ventas del cliente"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /ventas/:id.
func (h *VentaHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ventas.ErrVentaNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Venta no encontrada"})
		return
	}
	if err != nil {
		h.logger.Error("failed deleting venta", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al eliminar la venta"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Venta eliminada correctamente"})
}
