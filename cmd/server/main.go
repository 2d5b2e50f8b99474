package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/maintkit/cmms/internal/auth"
	"github.com/maintkit/cmms/internal/db"
	"github.com/maintkit/cmms/internal/handlers"
	"github.com/maintkit/cmms/internal/ingest"
	"github.com/maintkit/cmms/internal/middleware"
	"github.com/maintkit/cmms/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using environment variables")
	}

	if os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(log.DebugLevel)
	}

	engine := store.New()

	// Persistence is optional: without Mongo the engine runs memory-only
	// and every failure below degrades to a warning.
	var snapshots db.SnapshotCollection
	if client, err := db.ConnectMongo(); err != nil {
		log.WithError(err).Warn("MongoDB unavailable, running without persistence")
	} else {
		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "cmms"
		}
		snapshots = &db.MongoSnapshotCollection{
			Collection: client.Database(dbName).Collection("snapshots"),
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		snap, found, err := snapshots.Load(ctx)
		cancel()
		switch {
		case err != nil:
			log.WithError(err).Error("Snapshot restore failed, starting from empty state")
		case found:
			engine.Restore(snap)
			log.WithFields(log.Fields{
				"work_orders": len(snap.WorkOrders),
				"assets":      len(snap.Assets),
				"plans":       len(snap.Plans),
			}).Info("Restored state from snapshot")
		default:
			log.Info("No stored snapshot, starting from empty state")
		}
	}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to init auth service")
	}
	authMiddleware := middleware.NewAuthMiddleware(authService)

	authHandler := handlers.NewAuthHandler(authService, engine)
	assetHandler := handlers.NewAssetHandler(engine)
	inventoryHandler := handlers.NewInventoryHandler(engine)
	technicianHandler := handlers.NewTechnicianHandler(engine)
	locationHandler := handlers.NewLocationHandler(engine)
	workOrderHandler := handlers.NewWorkOrderHandler(engine)
	planHandler := handlers.NewPlanHandler(engine)
	kpiHandler := handlers.NewKPIHandler(engine)
	adminHandler := handlers.NewAdminHandler(engine, snapshots)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("GET /api/auth/me", authHandler.Me)

	mux.HandleFunc("POST /api/assets", assetHandler.Create)
	mux.HandleFunc("GET /api/assets", assetHandler.List)
	mux.HandleFunc("GET /api/assets/{id}", assetHandler.Get)
	mux.HandleFunc("PATCH /api/assets/{id}", assetHandler.Update)
	mux.HandleFunc("DELETE /api/assets/{id}", assetHandler.Delete)
	mux.HandleFunc("GET /api/assets/{id}/readings", assetHandler.Readings)

	mux.HandleFunc("POST /api/inventory", inventoryHandler.Create)
	mux.HandleFunc("GET /api/inventory", inventoryHandler.List)
	mux.HandleFunc("GET /api/inventory/{id}", inventoryHandler.Get)
	mux.HandleFunc("PATCH /api/inventory/{id}", inventoryHandler.Update)
	mux.HandleFunc("POST /api/inventory/{id}/adjust", inventoryHandler.Adjust)

	mux.HandleFunc("POST /api/technicians", technicianHandler.Create)
	mux.HandleFunc("GET /api/technicians", technicianHandler.List)
	mux.HandleFunc("GET /api/technicians/{id}", technicianHandler.Get)
	mux.HandleFunc("PATCH /api/technicians/{id}", technicianHandler.Update)

	mux.HandleFunc("POST /api/locations", locationHandler.Create)
	mux.HandleFunc("GET /api/locations", locationHandler.List)
	mux.HandleFunc("GET /api/locations/tree", locationHandler.Tree)
	mux.HandleFunc("GET /api/locations/{id}", locationHandler.Get)
	mux.HandleFunc("PATCH /api/locations/{id}", locationHandler.Update)
	mux.HandleFunc("DELETE /api/locations/{id}", locationHandler.Delete)

	mux.HandleFunc("POST /api/workorders", workOrderHandler.Create)
	mux.HandleFunc("GET /api/workorders", workOrderHandler.List)
	mux.HandleFunc("GET /api/workorders/{id}", workOrderHandler.Get)
	mux.HandleFunc("PATCH /api/workorders/{id}", workOrderHandler.Update)
	mux.HandleFunc("POST /api/workorders/{id}/checklist", workOrderHandler.AddChecklistItem)
	mux.HandleFunc("POST /api/workorders/{id}/checklist/{itemId}/toggle", workOrderHandler.ToggleChecklistItem)
	mux.HandleFunc("POST /api/workorders/{id}/complete", workOrderHandler.Complete)

	mux.HandleFunc("POST /api/plans", planHandler.Create)
	mux.HandleFunc("GET /api/plans", planHandler.List)
	mux.HandleFunc("POST /api/plans/generate", planHandler.Generate)
	mux.HandleFunc("GET /api/plans/{id}", planHandler.Get)
	mux.HandleFunc("PATCH /api/plans/{id}", planHandler.Update)

	mux.HandleFunc("GET /api/kpis", kpiHandler.Get)

	mux.HandleFunc("GET /api/admin/users", adminHandler.ListUsers)
	mux.HandleFunc("POST /api/admin/snapshot", adminHandler.SaveSnapshot)
	mux.HandleFunc("POST /api/admin/snapshot/restore", adminHandler.RestoreSnapshot)

	// Meter readings over MQTT are optional as well.
	ingester := ingest.NewMeterIngester(engine)
	if broker := os.Getenv("MQTT_BROKER"); broker != "" {
		clientID := os.Getenv("MQTT_CLIENT_ID")
		if clientID == "" {
			clientID = "cmms-server"
		}
		if err := ingester.Start(broker, clientID); err != nil {
			log.WithError(err).Warn("MQTT broker unavailable, meter ingest disabled")
		}
		defer ingester.Stop()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: authMiddleware.Authenticate(mux),
	}

	go func() {
		log.WithField("port", port).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	if snapshots != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := snapshots.Save(ctx, engine.Snapshot()); err != nil {
			log.WithError(err).Error("Failed to save snapshot on shutdown")
		} else {
			log.Info("Saved snapshot")
		}
		cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server shutdown error")
	}
}
