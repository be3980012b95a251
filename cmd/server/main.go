package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/config"
	"github.com/sdiagne/ferreteria/internal/repository/mongodb"
	"github.com/sdiagne/ferreteria/internal/server/handlers"
	"github.com/sdiagne/ferreteria/internal/server/router"
	"github.com/sdiagne/ferreteria/internal/service/catalogo"
	comparativassvc "github.com/sdiagne/ferreteria/internal/service/comparativas"
	comprassvc "github.com/sdiagne/ferreteria/internal/service/compras"
	ventassvc "github.com/sdiagne/ferreteria/internal/service/ventas"
	"github.com/sdiagne/ferreteria/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := mongodb.NewStore(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	clienteRepo := mongodb.NewClienteRepository(store)
	proveedorRepo := mongodb.NewProveedorRepository(store)
	productoRepo := mongodb.NewProductoRepository(store)
	ventaRepo := mongodb.NewVentaRepository(store)
	compraRepo := mongodb.NewCompraRepository(store)

	clienteSvc := catalogo.NewClienteService(clienteRepo, baseLogger.Named("svc.clientes"))
	proveedorSvc := catalogo.NewProveedorService(proveedorRepo, baseLogger.Named("svc.proveedores"))
	productoSvc := catalogo.NewProductoService(productoRepo, baseLogger.Named("svc.productos"))
	ventaSvc := ventassvc.NewService(ventaRepo, clienteRepo, productoRepo, baseLogger.Named("svc.ventas"))
	compraSvc := comprassvc.NewService(compraRepo, proveedorRepo, productoRepo, baseLogger.Named("svc.compras"))
	comparativaSvc := comparativassvc.NewService(ventaRepo, compraRepo, baseLogger.Named("svc.comparativas"))

	engine := router.New(router.Handlers{
		Clientes:     handlers.NewClienteHandler(clienteSvc, baseLogger.Named("handlers.clientes")),
		Proveedores:  handlers.NewProveedorHandler(proveedorSvc, baseLogger.Named("handlers.proveedores")),
		Productos:    handlers.NewProductoHandler(productoSvc, baseLogger.Named("handlers.productos")),
		Ventas:       handlers.NewVentaHandler(ventaSvc, baseLogger.Named("handlers.ventas")),
		Compras:      handlers.NewCompraHandler(compraSvc, baseLogger.Named("handlers.compras")),
		Comparativas: handlers.NewComparativaHandler(comparativaSvc, baseLogger.Named("handlers.comparativas")),
	}, cfg.CORS.AllowedOrigins, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
