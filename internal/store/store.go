// Package store persists crossmin serve's run records in MongoDB: one
// document per run, carrying both the run's scalar summary and its
// best-ordering snapshot per tracked objective. A document store fits
// this record better than a relational one would — the ordering payload
// is schema-free and shaped differently depending on which objectives a
// run tracked, and nothing here needs a join, only lookup by run ID.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gocrossmin/crossmin/snapshot"
)

// ObjectiveRecord is one tracked objective's best-so-far snapshot, as
// reported in a Run document.
type ObjectiveRecord struct {
	Objective string             `bson:"objective" json:"objective"`
	Value     float64            `bson:"value" json:"value"`
	Iteration int                `bson:"iteration" json:"iteration"`
	Ordering  *snapshot.Ordering `bson:"ordering" json:"ordering"`
}

// Run is one submitted-and-completed (or still-running) crossmin serve
// job, as persisted to and loaded from Mongo.
type Run struct {
	ID            string             `bson:"_id" json:"id"`
	GraphName     string             `bson:"graph_name" json:"graph_name"`
	Heuristic     string             `bson:"heuristic" json:"heuristic"`
	Preprocessor  string             `bson:"preprocessor" json:"preprocessor"`
	Status        string             `bson:"status" json:"status"`
	Error         string             `bson:"error,omitempty" json:"error,omitempty"`
	Iterations    int                `bson:"iterations" json:"iterations"`
	Passes        int                `bson:"passes" json:"passes"`
	WallTime      time.Duration      `bson:"wall_time_ns" json:"wall_time_ns"`
	SubmittedAt   time.Time          `bson:"submitted_at" json:"submitted_at"`
	CompletedAt   time.Time          `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	Best          []ObjectiveRecord  `bson:"best,omitempty" json:"best,omitempty"`
	FinalOrdering *snapshot.Ordering `bson:"final_ordering,omitempty" json:"final_ordering,omitempty"`
}

// Statuses a Run can hold across its lifecycle.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Store wraps the "runs" collection a crossmin serve instance persists
// to.
type Store struct {
	runs *mongo.Collection
}

// Connect dials uri and returns a Store bound to dbName's "runs"
// collection. It pings the server once so a misconfigured URI fails
// fast at startup rather than on the first request.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return &Store{runs: client.Database(dbName).Collection("runs")}, nil
}

// Insert persists a newly submitted run.
func (s *Store) Insert(ctx context.Context, r *Run) error {
	_, err := s.runs.InsertOne(ctx, r)
	if err != nil {
		return fmt.Errorf("store: insert: %w", err)
	}
	return nil
}

// Update overwrites a run's document wholesale, used to record
// completion or failure after engine.Run returns.
func (s *Store) Update(ctx context.Context, r *Run) error {
	_, err := s.runs.ReplaceOne(ctx, bson.M{"_id": r.ID}, r)
	if err != nil {
		return fmt.Errorf("store: update: %w", err)
	}
	return nil
}

// ErrNotFound is returned by Get when no run with the given id exists.
var ErrNotFound = mongo.ErrNoDocuments

// Get fetches one run by id.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	var r Run
	err := s.runs.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", id, err)
	}
	return &r, nil
}
