package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/uniportal/event-portal/internal/core/domain"
)

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(collectionEvents)}
}

type eventDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	User        primitive.ObjectID   `bson:"user"`
	Title       string               `bson:"title"`
	Date        string               `bson:"date"`
	Time        string               `bson:"time"`
	Location    string               `bson:"location"`
	Description string               `bson:"description"`
	Category    string               `bson:"category"`
	ImageURL    string               `bson:"imageUrl,omitempty"`
	Attendees   []primitive.ObjectID `bson:"attendees"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
	Author      []authorDoc          `bson:"author,omitempty"`
}

func toEventDoc(e *domain.Event) (eventDoc, error) {
	creator, ok := objectID(e.User.ID)
	if !ok {
		return eventDoc{}, fmt.Errorf("event creator id %q is not an object id", e.User.ID)
	}
	attendees := make([]primitive.ObjectID, 0, len(e.Attendees))
	for _, id := range e.Attendees {
		oid, ok := objectID(id)
		if !ok {
			return eventDoc{}, fmt.Errorf("attendee id %q is not an object id", id)
		}
		attendees = append(attendees, oid)
	}
	return eventDoc{
		User:        creator,
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Description: e.Description,
		Category:    e.Category,
		ImageURL:    e.ImageURL,
		Attendees:   attendees,
		CreatedAt:   e.CreatedAt.UTC(),
		UpdatedAt:   e.UpdatedAt.UTC(),
	}, nil
}

func (d eventDoc) toDomain() *domain.Event {
	ref := domain.UserRef{ID: d.User.Hex()}
	if len(d.Author) > 0 {
		ref.Name = d.Author[0].Name
		ref.Email = d.Author[0].Email
	}
	return &domain.Event{
		ID:          d.ID.Hex(),
		User:        ref,
		Title:       d.Title,
		Date:        d.Date,
		Time:        d.Time,
		Location:    d.Location,
		Description: d.Description,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
		Attendees:   hexIDs(d.Attendees),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// eventPatchSet translates a patch into a $set document.
func eventPatchSet(p domain.EventPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now.UTC()}
	fields := []struct {
		key string
		val *string
	}{
		{"title", p.Title},
		{"date", p.Date},
		{"time", p.Time},
		{"location", p.Location},
		{"description", p.Description},
		{"category", p.Category},
		{"imageUrl", p.ImageURL},
	}
	for _, f := range fields {
		if f.val != nil {
			set[f.key] = *f.val
		}
	}
	return set
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	doc, err := toEventDoc(e)
	if err != nil {
		return nil, err
	}
	doc.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc eventDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return r.aggregate(ctx, listPipeline(nil, "user", 0, false))
}

func (r *EventRepository) Recent(ctx context.Context, limit int) ([]*domain.Event, error) {
	return r.aggregate(ctx, listPipeline(nil, "user", limit, true))
}

func (r *EventRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	var docs []eventDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	out := make([]*domain.Event, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *EventRepository) Update(ctx context.Context, id string, p domain.EventPatch) (*domain.Event, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": eventPatchSet(p, time.Now())})
}

// AddAttendee uses $addToSet so a repeated registration leaves one entry.
func (r *EventRepository) AddAttendee(ctx context.Context, id, userID string) (*domain.Event, error) {
	uid, ok := objectID(userID)
	if !ok {
		return nil, fmt.Errorf("attendee id %q is not an object id", userID)
	}
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$addToSet": bson.M{"attendees": uid},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *EventRepository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*domain.Event, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc eventDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrEventNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}
