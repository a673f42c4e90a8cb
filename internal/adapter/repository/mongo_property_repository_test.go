package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	apperrors "estatehub/pkg/errors"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }
func boolPtr(v bool) *bool          { return &v }
func strPtr(v string) *string       { return &v }

func TestBuildFilterDocumentEmptyFilter(t *testing.T) {
	query := buildFilterDocument(repository.PropertyFilter{})

	assert.Equal(t, bson.M{}, query)
}

func TestBuildFilterDocumentSubstringFilters(t *testing.T) {
	query := buildFilterDocument(repository.PropertyFilter{
		Title:    "Lakeview",
		Location: "Addis",
	})

	assert.Equal(t, primitive.Regex{Pattern: "Lakeview", Options: "i"}, query["title"])
	assert.Equal(t, primitive.Regex{Pattern: "Addis", Options: "i"}, query["location"])
}

func TestBuildFilterDocumentQuotesRegexMetacharacters(t *testing.T) {
	query := buildFilterDocument(repository.PropertyFilter{Title: "2+2 (corner)"})

	assert.Equal(t, primitive.Regex{Pattern: `2\+2 \(corner\)`, Options: "i"}, query["title"])
}

func TestBuildFilterDocumentPriceRangeMergesIntoOneClause(t *testing.T) {
	query := buildFilterDocument(repository.PropertyFilter{
		MinPrice: float64Ptr(100000),
		MaxPrice: float64Ptr(300000),
	})

	assert.Equal(t, bson.M{"$gte": 100000.0, "$lte": 300000.0}, query["price"])
	assert.Len(t, query, 1)
}

func TestBuildFilterDocumentHalfOpenPriceRange(t *testing.T) {
	query := buildFilterDocument(repository.PropertyFilter{MinPrice: float64Ptr(50000)})

	assert.Equal(t, bson.M{"$gte": 50000.0}, query["price"])
}

func TestBuildFilterDocumentBoolAndExactFilters(t *testing.T) {
	query := buildFilterDocument(repository.PropertyFilter{
		PropertyType: entity.PropertyTypeVilla,
		Bedrooms:     intPtr(3),
		Bathrooms:    intPtr(2),
		ForSale:      boolPtr(true),
		ForRent:      boolPtr(false),
	})

	assert.Equal(t, bson.M{
		"propertyType": "Villa",
		"bedrooms":     3,
		"bathrooms":    2,
		"isForSale":    true,
		"isForRent":    false,
	}, query)
}

func TestBuildUpdateDocumentOnlySetsProvidedFields(t *testing.T) {
	set := buildUpdateDocument(repository.UpdateProperty{
		Price:    float64Ptr(275000),
		Location: strPtr("Bole"),
	})

	assert.Equal(t, bson.M{"price": 275000.0, "location": "Bole"}, set)
	assert.NotContains(t, set, "_id")
	assert.NotContains(t, set, "createdAt")
}

func TestBuildUpdateDocumentEmptyInput(t *testing.T) {
	assert.Empty(t, buildUpdateDocument(repository.UpdateProperty{}))
}

func TestBuildUpdateDocumentImages(t *testing.T) {
	images := []entity.PropertyImage{{URL: "https://cdn.example.com/a.jpg", Key: "a.jpg"}}
	set := buildUpdateDocument(repository.UpdateProperty{Images: &images})

	assert.Equal(t, bson.M{"images": images}, set)
}

func TestParseObjectIDRejectsMalformedID(t *testing.T) {
	_, err := parseObjectID("not-a-hex-id")

	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func TestParseObjectIDAcceptsHexID(t *testing.T) {
	oid := primitive.NewObjectID()
	parsed, err := parseObjectID(oid.Hex())

	assert.NoError(t, err)
	assert.Equal(t, oid, parsed)
}
