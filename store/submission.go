package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pfmo-ng/facility-api/schema"
)

var (
	ErrSubmissionNotFound = fmt.Errorf("submission not found")
)

// SubmissionFilter narrows down a submission listing.
type SubmissionFilter struct {
	State       string
	LGA         string
	SyncStatus  schema.SyncStatus
	CollectorID uint
	Skip        int64
	Limit       int64
}

// SubmissionUpdate carries the mutable workflow fields of a submission.
// Assessment content itself is immutable after intake.
type SubmissionUpdate struct {
	SubmissionStatus schema.SubmissionStatus
	SyncStatus       schema.SyncStatus
	Issues           string
	Comments         string
}

// SubmissionStore persists facility assessment submissions.
type SubmissionStore interface {
	CreateSubmission(submission *schema.Submission) (string, error)
	GetSubmission(id string) (*schema.Submission, error)
	ListSubmissions(filter SubmissionFilter) ([]schema.Submission, error)
	FullScan() ([]schema.Submission, error)
	UpdateSubmission(id string, update SubmissionUpdate) error
	DeleteSubmission(id string) error
	ListPendingSync(limit int64) ([]schema.Submission, error)
	MarkSynced(id string) error
	MarkSyncFailed(id string) error
}

// CreateSubmission stores a new submission and returns its id.
func (m *mongoDB) CreateSubmission(submission *schema.Submission) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	now := time.Now().UTC()
	submission.ID = primitive.NewObjectID()
	submission.CreatedAt = now
	submission.UpdatedAt = now
	if submission.SubmissionStatus == "" {
		submission.SubmissionStatus = schema.SubmissionPending
	}
	if submission.SyncStatus == "" {
		submission.SyncStatus = schema.SyncPending
	}

	if _, err := c.InsertOne(ctx, submission); err != nil {
		return "", err
	}

	return submission.ID.Hex(), nil
}

// GetSubmission returns one submission by id; ErrSubmissionNotFound when it
// does not exist.
func (m *mongoDB) GetSubmission(id string) (*schema.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrSubmissionNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	var submission schema.Submission
	if err := c.FindOne(ctx, bson.M{"_id": oid}).Decode(&submission); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}

	return &submission, nil
}

// ListSubmissions returns submissions matching the filter, newest first.
func (m *mongoDB) ListSubmissions(filter SubmissionFilter) ([]schema.Submission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	query := bson.M{}
	if filter.State != "" {
		query["state"] = filter.State
	}
	if filter.LGA != "" {
		query["lga"] = filter.LGA
	}
	if filter.SyncStatus != "" {
		query["sync_status"] = filter.SyncStatus
	}
	if filter.CollectorID != 0 {
		query["collector_id"] = filter.CollectorID
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	submissions := make([]schema.Submission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}

// FullScan loads the complete submission set for a report pass. Reports are
// administrative reads; they always recompute from the full set.
func (m *mongoDB) FullScan() ([]schema.Submission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": 1}))
	if err != nil {
		return nil, err
	}

	submissions := make([]schema.Submission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}

// UpdateSubmission updates workflow fields of a submission.
func (m *mongoDB) UpdateSubmission(id string, update SubmissionUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrSubmissionNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	fields := bson.M{"updated_at": time.Now().UTC()}
	if update.SubmissionStatus != "" {
		fields["submission_status"] = update.SubmissionStatus
	}
	if update.SyncStatus != "" {
		fields["sync_status"] = update.SyncStatus
	}
	if update.Issues != "" {
		fields["issues"] = update.Issues
	}
	if update.Comments != "" {
		fields["comments"] = update.Comments
	}

	result, err := c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

// DeleteSubmission removes a submission permanently. Administrative action.
func (m *mongoDB) DeleteSubmission(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrSubmissionNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	result, err := c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

// ListPendingSync returns submissions waiting for upstream sync, oldest first.
func (m *mongoDB) ListPendingSync(limit int64) ([]schema.Submission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	opts := options.Find().SetSort(bson.M{"created_at": 1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := c.Find(ctx, bson.M{"sync_status": schema.SyncPending}, opts)
	if err != nil {
		return nil, err
	}

	submissions := make([]schema.Submission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}

// MarkSynced flags a submission as delivered upstream.
func (m *mongoDB) MarkSynced(id string) error {
	return m.markSyncState(id, schema.SyncSynced)
}

// MarkSyncFailed flags a submission whose upstream delivery failed.
func (m *mongoDB) MarkSyncFailed(id string) error {
	return m.markSyncState(id, schema.SyncFailed)
}

func (m *mongoDB) markSyncState(id string, state schema.SyncStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrSubmissionNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	now := time.Now().UTC()
	fields := bson.M{
		"sync_status": state,
		"is_synced":   state == schema.SyncSynced,
		"updated_at":  now,
	}
	if state == schema.SyncSynced {
		fields["submission_status"] = schema.SubmissionSynced
		fields["synced_at"] = now
	}

	result, err := c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}
