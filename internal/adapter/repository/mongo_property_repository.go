package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/pkg/errors"
)

type mongoPropertyRepository struct {
	collection *mongo.Collection
}

func NewMongoPropertyRepository(db *mongo.Database) repository.PropertyRepository {
	return &mongoPropertyRepository{
		collection: db.Collection("properties"),
	}
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Validation("Invalid property ID format", err)
	}
	return oid, nil
}

func (r *mongoPropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	if property.CreatedAt.IsZero() {
		property.CreatedAt = time.Now()
	}
	if property.Images == nil {
		property.Images = []entity.PropertyImage{}
	}

	_, err := r.collection.InsertOne(ctx, property)
	if err != nil {
		return errors.Internal("Failed to create property", err)
	}

	return nil
}

func (r *mongoPropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var property entity.Property
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&property); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Property", err)
		}
		return nil, errors.Internal("Failed to get property", err)
	}

	return &property, nil
}

func (r *mongoPropertyRepository) Update(ctx context.Context, id string, update repository.UpdateProperty) (*entity.Property, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := buildUpdateDocument(update)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var property entity.Property
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Property", err)
		}
		return nil, errors.Internal("Failed to update property", err)
	}

	return &property, nil
}

func (r *mongoPropertyRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Internal("Failed to delete property", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Property", nil)
	}

	return nil
}

func (r *mongoPropertyRepository) List(ctx context.Context, filter repository.PropertyFilter, page, pageSize int) ([]*entity.Property, int64, error) {
	query := buildFilterDocument(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count properties", err)
	}

	skip := int64(page-1) * int64(pageSize)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(pageSize))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list properties", err)
	}
	defer cursor.Close(ctx)

	properties := []*entity.Property{}
	for cursor.Next(ctx) {
		var property entity.Property
		if err := cursor.Decode(&property); err != nil {
			return nil, 0, errors.Internal("Failed to decode property", err)
		}
		properties = append(properties, &property)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, errors.Internal("Failed to iterate properties", err)
	}

	return properties, total, nil
}

// buildFilterDocument translates the enumerated filter into one bson
// predicate. List uses the same document for both the page scan and the
// count, so the two can never disagree.
func buildFilterDocument(filter repository.PropertyFilter) bson.M {
	query := bson.M{}

	if filter.Title != "" {
		query["title"] = containsIgnoreCase(filter.Title)
	}
	if filter.Location != "" {
		query["location"] = containsIgnoreCase(filter.Location)
	}
	if filter.PropertyType != "" {
		query["propertyType"] = filter.PropertyType
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price"] = price
	}
	if filter.Bedrooms != nil {
		query["bedrooms"] = *filter.Bedrooms
	}
	if filter.Bathrooms != nil {
		query["bathrooms"] = *filter.Bathrooms
	}
	if filter.ForSale != nil {
		query["isForSale"] = *filter.ForSale
	}
	if filter.ForRent != nil {
		query["isForRent"] = *filter.ForRent
	}

	return query
}

// containsIgnoreCase matches the literal substring, so regex
// metacharacters in user input cannot alter the predicate.
func containsIgnoreCase(substring string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(substring), Options: "i"}
}

func buildUpdateDocument(update repository.UpdateProperty) bson.M {
	set := bson.M{}

	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.PropertyType != nil {
		set["propertyType"] = *update.PropertyType
	}
	if update.FinishingProgress != nil {
		set["finishingProgress"] = *update.FinishingProgress
	}
	if update.Bedrooms != nil {
		set["bedrooms"] = *update.Bedrooms
	}
	if update.Bathrooms != nil {
		set["bathrooms"] = *update.Bathrooms
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.IsForSale != nil {
		set["isForSale"] = *update.IsForSale
	}
	if update.IsForRent != nil {
		set["isForRent"] = *update.IsForRent
	}
	if update.Images != nil {
		set["images"] = *update.Images
	}

	return set
}
