// Package repository provides request-log data access layer.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yujinkim126/cart-service/internal/domain/model"
)

// LogsRepository stores request log entries in MongoDB.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{
		collection: db.Logs,
	}
}

// Create inserts a single log entry.
func (r *LogsRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	prepare(entry)
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts multiple log entries in bulk.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		prepare(entry)
		docs[i] = entry
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func prepare(entry *model.LogEntry) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
}
