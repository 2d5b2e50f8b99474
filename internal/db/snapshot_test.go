package db

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maintkit/cmms/internal/models"
	"github.com/maintkit/cmms/internal/store"
)

func TestConnectMongo_BadURI(t *testing.T) {
	os.Setenv("MONGO_URI", "mongodb://bad:uri")
	client, err := ConnectMongo()
	if err == nil {
		t.Error("expected error for bad URI, got nil")
	}
	if client != nil {
		t.Error("expected nil client on error")
	}
}

func TestSnapshotSave_NilCollection(t *testing.T) {
	coll := &MongoSnapshotCollection{Collection: nil}
	if err := coll.Save(context.Background(), store.Snapshot{}); err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestSnapshotLoad_NilCollection(t *testing.T) {
	coll := &MongoSnapshotCollection{Collection: nil}
	if _, _, err := coll.Load(context.Background()); err == nil {
		t.Error("expected error when collection is nil")
	}
}

// Integration test (requires running MongoDB)
func TestSnapshotRoundTrip_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" || uri == "uri" {
		t.Skip("MONGO_URI not set or invalid, skipping integration test")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("failed to connect: %v, skipping integration test", err)
		return
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "cmms"
	}
	coll := &MongoSnapshotCollection{Collection: client.Database(dbName).Collection("snapshots")}

	snap := store.Snapshot{
		Assets: []models.Asset{{ID: "a1", Name: "Compressor", Code: "CMP-1"}},
	}
	if err := coll.Save(ctx, snap); err != nil {
		t.Fatalf("expected save to succeed, got error: %v", err)
	}
	loaded, found, err := coll.Load(ctx)
	if err != nil {
		t.Fatalf("expected load to succeed, got error: %v", err)
	}
	if !found {
		t.Fatal("expected a stored snapshot to be found")
	}
	if len(loaded.Assets) != 1 || loaded.Assets[0].Code != "CMP-1" {
		t.Errorf("unexpected snapshot contents: %+v", loaded)
	}
}
