package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maintkit/cmms/internal/store"
)

// snapshotDocID is the fixed key of the single snapshot document. The whole
// engine state is written as one document and replaced on every save.
const snapshotDocID = "cmms-state-v1"

// SnapshotCollection defines the interface for persisting engine snapshots.
type SnapshotCollection interface {
	Save(ctx context.Context, snap store.Snapshot) error
	Load(ctx context.Context) (store.Snapshot, bool, error)
}

// snapshotDoc is the stored shape: the snapshot plus bookkeeping fields.
type snapshotDoc struct {
	ID      string         `bson:"_id"`
	SavedAt time.Time      `bson:"saved_at"`
	State   store.Snapshot `bson:"state"`
}

// MongoSnapshotCollection implements SnapshotCollection for MongoDB.
type MongoSnapshotCollection struct {
	Collection *mongo.Collection
}

// Save upserts the snapshot document.
func (c *MongoSnapshotCollection) Save(ctx context.Context, snap store.Snapshot) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	doc := snapshotDoc{
		ID:      snapshotDocID,
		SavedAt: time.Now().UTC(),
		State:   snap,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": snapshotDocID}, doc, opts)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot document. The second return value is false when no
// snapshot has been saved yet, which callers treat as a valid empty state.
func (c *MongoSnapshotCollection) Load(ctx context.Context) (store.Snapshot, bool, error) {
	if c.Collection == nil {
		return store.Snapshot{}, false, fmt.Errorf("mongo collection is nil")
	}
	var doc snapshotDoc
	err := c.Collection.FindOne(ctx, bson.M{"_id": snapshotDocID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return store.Snapshot{}, false, nil
		}
		return store.Snapshot{}, false, fmt.Errorf("load snapshot: %w", err)
	}
	return doc.State, true, nil
}
