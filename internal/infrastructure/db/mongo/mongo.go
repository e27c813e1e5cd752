package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/uniportal/event-portal/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

const (
	collectionUsers         = "users"
	collectionEvents        = "events"
	collectionAnnouncements = "announcements"
	collectionInquiries     = "inquiries"
)

var (
	_ ports.UserRepository         = (*UserRepository)(nil)
	_ ports.EventRepository        = (*EventRepository)(nil)
	_ ports.AnnouncementRepository = (*AnnouncementRepository)(nil)
	_ ports.InquiryRepository      = (*InquiryRepository)(nil)
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the unique email index and the createdAt indexes
// backing the newest-first listings.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	byCreated := mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}

	plan := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		collectionEvents:        {byCreated},
		collectionAnnouncements: {byCreated},
		collectionInquiries: {
			byCreated,
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
	}

	for coll, indexes := range plan {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}

// objectID parses a hex id. Malformed ids are reported as absent so callers
// can map them to their not-found sentinel.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// authorDoc is the projection of a user joined through $lookup.
type authorDoc struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

// listPipeline builds a newest-first aggregation over a collection whose
// author reference lives in refField. With populate set the author's name
// and email are joined into the "author" array.
func listPipeline(match bson.M, refField string, limit int, populate bool) mongo.Pipeline {
	if match == nil {
		match = bson.M{}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	if populate {
		pipeline = append(pipeline,
			bson.D{{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: collectionUsers},
				{Key: "localField", Value: refField},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "author"},
			}}},
			bson.D{{Key: "$project", Value: bson.D{
				{Key: "author.password", Value: 0},
			}}},
		)
	}
	return pipeline
}

func hexIDs(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}
