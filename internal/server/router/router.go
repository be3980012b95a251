package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/server/handlers"
)

// Handlers groups the HTTP adapters the router wires up.
type Handlers struct {
	Clientes     *handlers.ClienteHandler
	Proveedores  *handlers.ProveedorHandler
	Productos    *handlers.ProductoHandler
	Ventas       *handlers.VentaHandler
	Compras      *handlers.CompraHandler
	Comparativas *handlers.ComparativaHandler
}

// New wires the Gin engine with the API routes, CORS and logging middleware.
// All business routes live under the /api prefix.
func New(h Handlers, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(corsMiddleware(allowedOrigins))

	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Sistema de Gestión de Ferretería API"})
	})

	api.POST("/clientes", h.Clientes.Create)
	api.GET("/clientes", h.Clientes.List)
	api.GET("/clientes/:id", h.Clientes.Get)
	api.PUT("/clientes/:id", h.Clientes.Update)
	api.DELETE("/clientes/:id", h.Clientes.Delete)

	api.POST("/proveedores", h.Proveedores.Create)
	api.GET("/proveedores", h.Proveedores.List)
	api.GET("/proveedores/:id", h.Proveedores.Get)
	api.PUT("/proveedores/:id", h.Proveedores.Update)
	api.DELETE("/proveedores/:id", h.Proveedores.Delete)

	api.POST("/productos", h.Productos.Create)
	api.GET("/productos", h.Productos.List)
	api.GET("/productos/:id", h.Productos.Get)
	api.PUT("/productos/:id", h.Productos.Update)
	api.DELETE("/productos/:id", h.Productos.Delete)
	api.GET("/categorias", h.Productos.Categorias)

	api.POST("/ventas", h.Ventas.Create)
	api.GET("/ventas", h.Ventas.List)
	api.GET("/ventas/cliente/:id", h.Ventas.ListByCliente)
	api.DELETE("/ventas/:id", h.Ventas.Delete)

	api.POST("/compras", h.Compras.Create)
	api.GET("/compras", h.Compras.List)
	api.GET("/compras/proveedor/:id", h.Compras.ListByProveedor)
	api.DELETE("/compras/:id", h.Compras.Delete)

	api.GET("/comparativas", h.Comparativas.Get)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	// Browsers reject wildcard origins combined with credentials.
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = allowedOrigins
	}

	return cors.New(cfg)
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
