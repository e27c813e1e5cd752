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

type AnnouncementRepository struct {
	coll *mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	return &AnnouncementRepository{coll: db.Collection(collectionAnnouncements)}
}

type announcementDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Admin     primitive.ObjectID `bson:"admin"`
	Title     string             `bson:"title"`
	Message   string             `bson:"message"`
	Urgent    bool               `bson:"urgent"`
	Audience  string             `bson:"audience"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func toAnnouncementDoc(a *domain.Announcement) (announcementDoc, error) {
	admin, ok := objectID(a.Admin.ID)
	if !ok {
		return announcementDoc{}, fmt.Errorf("announcement admin id %q is not an object id", a.Admin.ID)
	}
	return announcementDoc{
		Admin:     admin,
		Title:     a.Title,
		Message:   a.Message,
		Urgent:    a.Urgent,
		Audience:  a.Audience,
		CreatedAt: a.CreatedAt.UTC(),
		UpdatedAt: a.UpdatedAt.UTC(),
	}, nil
}

func (d announcementDoc) toDomain() *domain.Announcement {
	return &domain.Announcement{
		ID:        d.ID.Hex(),
		Admin:     domain.UserRef{ID: d.Admin.Hex()},
		Title:     d.Title,
		Message:   d.Message,
		Urgent:    d.Urgent,
		Audience:  d.Audience,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func announcementPatchSet(p domain.AnnouncementPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now.UTC()}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Message != nil {
		set["message"] = *p.Message
	}
	if p.Urgent != nil {
		set["urgent"] = *p.Urgent
	}
	if p.Audience != nil {
		set["audience"] = *p.Audience
	}
	return set
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	doc, err := toAnnouncementDoc(a)
	if err != nil {
		return nil, err
	}
	doc.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert announcement: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AnnouncementRepository) FindByID(ctx context.Context, id string) (*domain.Announcement, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrAnnouncementNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc announcementDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("find announcement: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AnnouncementRepository) List(ctx context.Context) ([]*domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	var docs []announcementDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode announcements: %w", err)
	}

	out := make([]*domain.Announcement, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *AnnouncementRepository) Update(ctx context.Context, id string, p domain.AnnouncementPatch) (*domain.Announcement, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrAnnouncementNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": announcementPatchSet(p, time.Now())}

	var doc announcementDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("update announcement: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrAnnouncementNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAnnouncementNotFound
	}
	return nil
}
