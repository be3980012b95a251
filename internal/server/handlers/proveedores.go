package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/domain/models"
	"github.com/sdiagne/ferreteria/internal/service/catalogo"
)

// ProveedorHandler adapts the supplier service to HTTP.
type ProveedorHandler struct {
	svc    *catalogo.ProveedorService
	logger *zap.Logger
}

// NewProveedorHandler constructs the supplier HTTP adapter.
func NewProveedorHandler(svc *catalogo.ProveedorService, logger *zap.Logger) *ProveedorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProveedorHandler{svc: svc, logger: logger}
}

// Create handles POST /proveedores.
func (h *ProveedorHandler) Create(c *gin.Context) {
	var in models.ProveedorCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid proveedor payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	proveedor, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.logger.Error("failed creating proveedor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al crear el proveedor"})
		return
	}

	c.JSON(http.StatusOK, proveedor)
}

// List handles GET /proveedores.
func (h *ProveedorHandler) List(c *gin.Context) {
	proveedores, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing proveedores", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al obtener los proveedores"})
		return
	}

	c.JSON(http.StatusOK, proveedores)
}

// Get handles GET /proveedores/:id.
func (h *ProveedorHandler) Get(c *gin.Context) {
	proveedor, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalogo.ErrProveedorNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Proveedor no encontrado"})
		return
	}
	if err != nil {
		h.logger.Error("failed fetching proveedor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al obtener el proveedor"})
		return
	}

	c.JSON(http.StatusOK, proveedor)
}

// Update handles PUT /proveedores/:id.
func (h *ProveedorHandler) Update(c *gin.Context) {
	var in models.ProveedorCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid proveedor payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	proveedor, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if errors.Is(err, catalogo.ErrProveedorNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Proveedor no encontrado"})
		return
	}
	if err != nil {
		h.logger.Error("failed updating proveedor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al actualizar el proveedor"})
		return
	}

	c.JSON(http.StatusOK, proveedor)
}

// Delete handles DELETE /proveedores/:id.
func (h *ProveedorHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalogo.ErrProveedorNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Proveedor no encontrado"})
		return
	}
	if err != nil {
		h.logger.Error("failed deleting proveedor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al eliminar el proveedor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Proveedor eliminado correctamente"})
}
