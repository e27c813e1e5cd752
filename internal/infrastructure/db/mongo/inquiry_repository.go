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
	"github.com/uniportal/event-portal/internal/core/ports"
)

type InquiryRepository struct {
	coll *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{coll: db.Collection(collectionInquiries)}
}

type inquiryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
	Author    []authorDoc        `bson:"author,omitempty"`
}

func toInquiryDoc(q *domain.Inquiry) (inquiryDoc, error) {
	author, ok := objectID(q.User.ID)
	if !ok {
		return inquiryDoc{}, fmt.Errorf("inquiry author id %q is not an object id", q.User.ID)
	}
	return inquiryDoc{
		User:      author,
		Subject:   q.Subject,
		Message:   q.Message,
		Status:    string(q.Status),
		CreatedAt: q.CreatedAt.UTC(),
		UpdatedAt: q.UpdatedAt.UTC(),
	}, nil
}

func (d inquiryDoc) toDomain() *domain.Inquiry {
	ref := domain.UserRef{ID: d.User.Hex()}
	if len(d.Author) > 0 {
		ref.Name = d.Author[0].Name
		ref.Email = d.Author[0].Email
	}
	return &domain.Inquiry{
		ID:        d.ID.Hex(),
		User:      ref,
		Subject:   d.Subject,
		Message:   d.Message,
		Status:    domain.InquiryStatus(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *InquiryRepository) Create(ctx context.Context, q *domain.Inquiry) (*domain.Inquiry, error) {
	doc, err := toInquiryDoc(q)
	if err != nil {
		return nil, err
	}
	doc.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert inquiry: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *InquiryRepository) FindByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrInquiryNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc inquiryDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("find inquiry: %w", err)
	}
	return doc.toDomain(), nil
}

// inquiryMatch converts a filter into a $match document. An owner id that is
// not an object id matches nothing.
func inquiryMatch(f ports.InquiryFilter) bson.M {
	if f.UserID == "" {
		return bson.M{}
	}
	oid, ok := objectID(f.UserID)
	if !ok {
		return bson.M{"_id": primitive.NilObjectID}
	}
	return bson.M{"user": oid}
}

func (r *InquiryRepository) List(ctx context.Context, f ports.InquiryFilter) ([]*domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Aggregate(ctx, listPipeline(inquiryMatch(f), "user", f.Limit, f.Populate))
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	var docs []inquiryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode inquiries: %w", err)
	}

	out := make([]*domain.Inquiry, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *InquiryRepository) SetStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrInquiryNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc inquiryDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("set inquiry status: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *InquiryRepository) CountByStatus(ctx context.Context, status domain.InquiryStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"status": string(status)})
	if err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}
	return n, nil
}
