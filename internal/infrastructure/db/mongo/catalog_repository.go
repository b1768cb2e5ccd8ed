package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
)

const collectionServices = "services"

// CatalogRepository implements ports.CatalogRepository on MongoDB.
type CatalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{col: db.Collection(collectionServices)}
}

type serviceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Cost        int64              `bson:"cost"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *serviceDoc) toDomain() *domain.Service {
	return &domain.Service{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Cost:        d.Cost,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func parseServiceID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrServiceNotFound
	}
	return oid, nil
}

func (r *CatalogRepository) Create(ctx context.Context, s *domain.Service) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := serviceDoc{
		Name:        s.Name,
		Cost:        s.Cost,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid.Hex()
	}
	return nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	oid, err := parseServiceID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc serviceDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *CatalogRepository) List(ctx context.Context) ([]*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := make([]*domain.Service, 0)
	for cursor.Next(ctx) {
		var doc serviceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		services = append(services, doc.toDomain())
	}
	return services, cursor.Err()
}

func (r *CatalogRepository) Update(ctx context.Context, id string, fields ports.CatalogUpdate) (*domain.Service, error) {
	oid, err := parseServiceID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Cost != nil {
		set["cost"] = *fields.Cost
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc serviceDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseServiceID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}
