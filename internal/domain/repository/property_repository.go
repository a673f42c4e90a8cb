package repository

import (
	"context"

	"estatehub/internal/domain/entity"
)

// PropertyFilter enumerates every predicate the list endpoint recognizes.
// Nil pointers and empty strings mean "no constraint from this input";
// arbitrary query keys never reach the storage layer.
type PropertyFilter struct {
	Title        string
	Location     string
	PropertyType string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	Bathrooms    *int
	ForSale      *bool
	ForRent      *bool
}

// UpdateProperty carries the fields of a partial update. Only non-nil
// fields are written; id and createdAt are not representable here and so
// can never change.
type UpdateProperty struct {
	Title             *string
	Price             *float64
	Description       *string
	PropertyType      *string
	FinishingProgress *string
	Bedrooms          *int
	Bathrooms         *int
	Location          *string
	IsForSale         *bool
	IsForRent         *bool
	Images            *[]entity.PropertyImage
}

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	Update(ctx context.Context, id string, update UpdateProperty) (*entity.Property, error)
	Delete(ctx context.Context, id string) error
	// List returns one page of matching properties ordered by creation time
	// descending, plus the total number of matching records before
	// pagination. The same predicate backs both the scan and the count.
	List(ctx context.Context, filter PropertyFilter, page, pageSize int) ([]*entity.Property, int64, error)
}
