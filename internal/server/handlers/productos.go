package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/domain/models"
	"github.com/sdiagne/ferreteria/internal/service/catalogo"
)

// ProductoHandler adapts the product service to HTTP, including the static
// category listing.
type ProductoHandler struct {
	svc    *catalogo.ProductoService
	logger *zap.Logger
}

// NewProductoHandler constructs the product HTTP adapter.
func NewProductoHandler(svc *catalogo.ProductoService, logger *zap.Logger) *ProductoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductoHandler{svc: svc, logger: logger}
}

// Create handles POST /productos.
func (h *ProductoHandler) Create(c *gin.Context) {
	var in models.ProductoCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid producto payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	producto, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.logger.Error("failed creating producto", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al crear el producto"})
		return
	}

	c.JSON(http.StatusOK, producto)
}

// List handles GET /productos.
func (h *ProductoHandler) List(c *gin.Context) {
	productos, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing productos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al obtener los productos"})
		return
	}

	c.JSON(http.StatusOK, productos)
}

// Get handles GET /productos/:id.
func (h *ProductoHandler) Get(c *gin.Context) {
	producto, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalogo.ErrProductoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Producto no encontrado"})
		return
	}
	if err != nil {
		h.logger.Error("failed fetching producto", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al obtener el producto"})
		return
	}

	c.JSON(http.StatusOK, producto)
}

// Update handles PUT /productos/:id.
func (h *ProductoHandler) Update(c *gin.Context) {
	var in models.ProductoCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid producto payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	producto, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if errors.Is(err, catalogo.ErrProductoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Producto no encontrado"})
		return
	}
	if err != nil {
		h.logger.Error("failed updating producto", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al actualizar el producto"})
		return
	}

	c.JSON(http.StatusOK, producto)
}

// Delete handles DELETE /productos/:id.
func (h *ProductoHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalogo.ErrProductoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Producto no encontrado"})
		return
	}
	if err != nil {
		h.logger.Error("failed deleting producto", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al eliminar el producto"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado correctamente"})
}

// Categorias handles GET /categorias.
func (h *ProductoHandler) Categorias(c *gin.Context) {
	c.JSON(http.StatusOK, catalogo.Categorias())
}
