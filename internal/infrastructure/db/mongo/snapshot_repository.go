package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/infrastructure/snapshot"
)

const collectionSnapshots = "snapshots"

// SnapshotRepository stores the encoded state as a single document keyed by
// snapshot.Key.
type SnapshotRepository struct {
	col *mongo.Collection
}

func NewSnapshotRepository(db *mongo.Database) *SnapshotRepository {
	return &SnapshotRepository{col: db.Collection(collectionSnapshots)}
}

type snapshotDoc struct {
	ID        string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Load retrieves the snapshot document.
func (r *SnapshotRepository) Load(ctx context.Context) (*domain.State, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc snapshotDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": snapshot.Key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("find snapshot: %w", err)
	}
	return snapshot.Decode([]byte(doc.Payload))
}

// Save upserts the snapshot document.
func (r *SnapshotRepository) Save(ctx context.Context, st domain.State) error {
	b, err := snapshot.Encode(st)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := snapshotDoc{ID: snapshot.Key, Payload: string(b), UpdatedAt: time.Now().UTC()}
	_, err = r.col.ReplaceOne(ctx, bson.M{"_id": snapshot.Key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Ping checks the server and that the database accepts commands.
func (r *SnapshotRepository) Ping(ctx context.Context) error {
	if err := r.col.Database().Client().Ping(ctx, nil); err != nil {
		return err
	}
	return r.col.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
