package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/domain/models"
	"github.com/sdiagne/ferreteria/internal/service/compras"
)

// CompraHandler adapts the purchases service to HTTP.
type CompraHandler struct {
	svc    *compras.Service
	logger *zap.Logger
}

// NewCompraHandler constructs the purchases HTTP adapter.
func NewCompraHandler(svc *compras.Service, logger *zap.Logger) *CompraHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompraHandler{svc: svc, logger: logger}
}

// Create handles POST /compras.
func (h *CompraHandler) Create(c *gin.Context) {
	var in models.CompraCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid compra payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	compra, err := h.svc.Create(c.Request.Context(), in)
	if errors.Is(err, compras.ErrProveedorNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Proveedor no encontrado"})
		return
	}
	if err != nil {
		h.logger.Error("failed creating compra", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al registrar la compra"})
		return
	}

	c.JSON(http.StatusOK, compra)
}

// List handles GET /compras.
func (h *CompraHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing compras", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al obtener las compras"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListByProveedor handles GET /compras/proveedor/:id.
func (h *CompraHandler) ListByProveedor(c *gin.Context) {
	result, err := h.svc.ListByProveedor(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed listing compras by proveedor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al obtener las compras del proveedor"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /compras/:id.
func (h *CompraHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, compras.ErrCompraNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Compra no encontrada"})
		return
	}
	if err != nil {
		h.logger.Error("failed deleting compra", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al eliminar la compra"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Compra eliminada correctamente"})
}
