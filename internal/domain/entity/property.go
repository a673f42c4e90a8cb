package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyImage references an externally stored binary asset. The store
// persists url/key pairs as-is and never inspects the content behind them.
type PropertyImage struct {
	URL string `bson:"url" json:"url"`
	Key string `bson:"key" json:"key"`
}

type Property struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title             string             `bson:"title" json:"title"`
	Price             float64            `bson:"price" json:"price"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	PropertyType      string             `bson:"propertyType" json:"propertyType"`
	FinishingProgress string             `bson:"finishingProgress,omitempty" json:"finishingProgress,omitempty"`
	Bedrooms          *int               `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms         *int               `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Location          string             `bson:"location,omitempty" json:"location,omitempty"`
	IsForSale         bool               `bson:"isForSale" json:"isForSale"`
	IsForRent         bool               `bson:"isForRent" json:"isForRent"`
	Images            []PropertyImage    `bson:"images" json:"images"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

const (
	PropertyTypeApartment  = "Apartment"
	PropertyTypeVilla      = "Villa"
	PropertyTypeOffice     = "Office"
	PropertyTypeLand       = "Land"
	PropertyTypeCommercial = "Commercial"

	FinishingSemiFinished  = "Semi-Finished"
	FinishingFullyFinished = "Fully Finished"
	FinishingStarted       = "Started"
)

var propertyTypes = map[string]bool{
	PropertyTypeApartment:  true,
	PropertyTypeVilla:      true,
	PropertyTypeOffice:     true,
	PropertyTypeLand:       true,
	PropertyTypeCommercial: true,
}

var finishingProgressValues = map[string]bool{
	FinishingSemiFinished:  true,
	FinishingFullyFinished: true,
	FinishingStarted:       true,
}

func IsValidPropertyType(value string) bool {
	return propertyTypes[value]
}

func IsValidFinishingProgress(value string) bool {
	return finishingProgressValues[value]
}
