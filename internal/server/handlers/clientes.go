package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/domain/models"
	"github.com/sdiagne/ferreteria/internal/service/catalogo"
)

// ClienteHandler adapts the client service to HTTP.
type ClienteHandler struct {
	svc    *catalogo.ClienteService
	logger *zap.Logger
}

// NewClienteHandler constructs the client HTTP adapter.
func NewClienteHandler(svc *catalogo.ClienteService, logger *zap.Logger) *ClienteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClienteHandler{svc: svc, logger: logger}
}

// Create handles POST /clientes.
func (h *ClienteHandler) Create(c *gin.Context) {
	var in models.ClienteCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid cliente payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	cliente, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.logger.Error("failed creating cliente", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al crear el cliente"})
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// List handles GET /clientes.
func (h *ClienteHandler) List(c *gin.Context) {
	clientes, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing clientes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al obtener los clientes"})
		return
	}

	c.JSON(http.StatusOK, clientes)
}

// Get handles GET /clientes/:id.
func (h *ClienteHandler) Get(c *gin.Context) {
	cliente, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalogo.ErrClienteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Cliente no encontrado"})
		return
	}
	if err != nil {
		h.logger.Error("failed fetching cliente", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al obtener el cliente"})
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// Update handles PUT /clientes/:id.
func (h *ClienteHandler) Update(c *gin.Context) {
	var in models.ClienteCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid cliente payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la petición inválido"})
		return
	}

	cliente, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if errors.Is(err, catalogo.ErrClienteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Cliente no encontrado"})
		return
	}
	if err != nil {
		h.logger.Error("failed updating cliente", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al actualizar el cliente"})
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// Delete handles DELETE /clientes/:id.
func (h *ClienteHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalogo.ErrClienteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Cliente no encontrado"})
		return
	}
	if err != nil {
		h.logger.Error("failed deleting cliente", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al eliminar el cliente"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cliente eliminado correctamente"})
}
