package store

import (
	"context"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pfmo-ng/facility-api/schema"
)

// StateCount is one state's submission count.
type StateCount struct {
	State string `json:"state" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

// LGACount is one LGA's submission count.
type LGACount struct {
	LGA   string `json:"lga" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

// DayCount is the number of submissions received on one calendar day.
type DayCount struct {
	Date  string `json:"date" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

// GeoPoint is one facility location for the map view.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Name      string  `json:"name" bson:"facility_name"`
	State     string  `json:"state" bson:"state"`
	LGA       string  `json:"lga" bson:"lga"`
	Condition string  `json:"condition" bson:"facility_condition"`
}

// CollectorCount is the number of submissions per collector account.
type CollectorCount struct {
	CollectorID uint `json:"collector_id" bson:"_id"`
	Count       int  `json:"submission_count" bson:"count"`
}

// Overview is the dashboard headline block.
type Overview struct {
	TotalSubmissions    int64               `json:"total_submissions"`
	SyncedSubmissions   int64               `json:"synced_submissions"`
	PendingSubmissions  int64               `json:"pending_submissions"`
	SyncedPercentage    float64             `json:"synced_percentage"`
	SubmissionsByState  []StateCount        `json:"submissions_by_state"`
	TopLGAs             []LGACount          `json:"top_lgas"`
	RecentSubmissions   []schema.Submission `json:"recent_submissions"`
	SubmissionsOverTime []DayCount          `json:"submissions_over_time"`
}

// Dashboard serves the aggregate views of the admin dashboard straight from
// mongo pipelines; the detailed analytics report goes through FullScan instead.
type Dashboard interface {
	DashboardOverview(now time.Time) (*Overview, error)
	GeographicData() ([]GeoPoint, error)
	CollectorCounts() ([]CollectorCount, error)
}

func (m *mongoDB) DashboardOverview(now time.Time) (*Overview, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	total, err := c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	synced, err := c.CountDocuments(ctx, bson.M{"is_synced": true})
	if err != nil {
		return nil, err
	}
	pending, err := c.CountDocuments(ctx, bson.M{"sync_status": schema.SyncPending})
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		TotalSubmissions:    total,
		SyncedSubmissions:   synced,
		PendingSubmissions:  pending,
		SubmissionsByState:  make([]StateCount, 0),
		TopLGAs:             make([]LGACount, 0),
		RecentSubmissions:   make([]schema.Submission, 0),
		SubmissionsOverTime: make([]DayCount, 0),
	}
	if total > 0 {
		overview.SyncedPercentage = math.Round(float64(synced)/float64(total)*100*100) / 100
	}

	cursor, err := c.Aggregate(ctx, []bson.M{
		aggStageGroupCount("$state"),
		{"$sort": bson.M{"count": -1}},
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &overview.SubmissionsByState); err != nil {
		return nil, err
	}

	cursor, err = c.Aggregate(ctx, []bson.M{
		aggStageGroupCount("$lga"),
		{"$sort": bson.M{"count": -1}},
		{"$limit": 10},
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &overview.TopLGAs); err != nil {
		return nil, err
	}

	recentCursor, err := c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(10))
	if err != nil {
		return nil, err
	}
	if err := recentCursor.All(ctx, &overview.RecentSubmissions); err != nil {
		return nil, err
	}

	thirtyDaysAgo := now.AddDate(0, 0, -30)
	cursor, err = c.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"created_at": bson.M{"$gte": thirtyDaysAgo}}},
		{"$group": bson.M{
			"_id": bson.M{
				"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"},
			},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &overview.SubmissionsOverTime); err != nil {
		return nil, err
	}

	return overview, nil
}

// GeographicData returns every submission that has a GPS fix.
func (m *mongoDB) GeographicData() ([]GeoPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	cursor, err := c.Find(ctx, bson.M{
		"latitude":  bson.M{"$ne": nil},
		"longitude": bson.M{"$ne": nil},
	})
	if err != nil {
		return nil, err
	}

	points := make([]GeoPoint, 0)
	if err := cursor.All(ctx, &points); err != nil {
		return nil, err
	}

	return points, nil
}

func (m *mongoDB) CollectorCounts() ([]CollectorCount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	cursor, err := c.Aggregate(ctx, []bson.M{
		aggStageGroupCount("$collector_id"),
		{"$sort": bson.M{"count": -1}},
	})
	if err != nil {
		return nil, err
	}

	counts := make([]CollectorCount, 0)
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}

	return counts, nil
}

// aggStageGroupCount groups documents by a field and counts group sizes.
func aggStageGroupCount(field string) bson.M {
	return bson.M{
		"$group": bson.M{
			"_id": field,
			"count": bson.M{
				"$sum": 1,
			},
		},
	}
}
