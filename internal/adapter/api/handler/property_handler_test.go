package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatehub/internal/adapter/api"
	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/usecase"
	"estatehub/pkg/errors"
	"estatehub/pkg/utils"
)

// memPropertyRepo backs handler tests with just enough store semantics.
type memPropertyRepo struct {
	properties map[string]*entity.Property
}

func newMemPropertyRepo() *memPropertyRepo {
	return &memPropertyRepo{properties: make(map[string]*entity.Property)}
}

func (m *memPropertyRepo) Create(_ context.Context, property *entity.Property) error {
	property.ID = primitive.NewObjectID()
	property.CreatedAt = time.Now()
	if property.Images == nil {
		property.Images = []entity.PropertyImage{}
	}
	stored := *property
	m.properties[property.ID.Hex()] = &stored
	return nil
}

func (m *memPropertyRepo) GetByID(_ context.Context, id string) (*entity.Property, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, errors.Validation("Invalid property ID format", err)
	}
	property, ok := m.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	copied := *property
	return &copied, nil
}

func (m *memPropertyRepo) Update(ctx context.Context, id string, update repository.UpdateProperty) (*entity.Property, error) {
	property, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Title != nil {
		property.Title = *update.Title
	}
	if update.Price != nil {
		property.Price = *update.Price
	}
	if update.Location != nil {
		property.Location = *update.Location
	}
	stored := *property
	m.properties[id] = &stored
	return property, nil
}

func (m *memPropertyRepo) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return errors.Validation("Invalid property ID format", err)
	}
	if _, ok := m.properties[id]; !ok {
		return errors.NotFound("Property", nil)
	}
	delete(m.properties, id)
	return nil
}

func (m *memPropertyRepo) List(_ context.Context, filter repository.PropertyFilter, page, pageSize int) ([]*entity.Property, int64, error) {
	matched := []*entity.Property{}
	for _, property := range m.properties {
		if filter.PropertyType != "" && property.PropertyType != filter.PropertyType {
			continue
		}
		copied := *property
		matched = append(matched, &copied)
	}
	return matched, int64(len(matched)), nil
}

func newTestServer() (*echo.Echo, *PropertyHandler) {
	e := echo.New()
	e.Validator = api.NewValidator()
	uc := usecase.NewPropertyUseCase(newMemPropertyRepo(), nil)
	return e, NewPropertyHandler(uc, nil)
}

func doJSON(e *echo.Echo, h echo.HandlerFunc, method, target, body string, pathParam ...string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(pathParam) == 2 {
		c.SetParamNames(pathParam[0])
		c.SetParamValues(pathParam[1])
	}
	_ = h(c)
	return rec
}

func TestCreatePropertyReturns201WithGeneratedID(t *testing.T) {
	e, h := newTestServer()

	rec := doJSON(e, h.CreateProperty, http.MethodPost, "/properties",
		`{"title":"Lakeview","price":250000,"propertyType":"Villa","location":"Addis Ababa","isForSale":true}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Lakeview", created.Title)
	assert.True(t, created.IsForSale)
	assert.NotNil(t, created.Images)
}

func TestCreatePropertyMissingTitleIs400(t *testing.T) {
	e, h := newTestServer()

	rec := doJSON(e, h.CreateProperty, http.MethodPost, "/properties",
		`{"price":250000,"propertyType":"Villa"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestCreatePropertyBadEnumIs400(t *testing.T) {
	e, h := newTestServer()

	rec := doJSON(e, h.CreateProperty, http.MethodPost, "/properties",
		`{"title":"X","price":1,"propertyType":"Castle"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid property type")
}

func TestGetPropertyNotFoundShape(t *testing.T) {
	e, h := newTestServer()

	rec := doJSON(e, h.GetProperty, http.MethodGet, "/properties/x", "", "id", primitive.NewObjectID().Hex())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Property not found"}`, rec.Body.String())
}

func TestGetPropertyMalformedIDIs400(t *testing.T) {
	e, h := newTestServer()

	rec := doJSON(e, h.GetProperty, http.MethodGet, "/properties/x", "", "id", "not-hex")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePropertyMessageShape(t *testing.T) {
	e, h := newTestServer()

	created := doJSON(e, h.CreateProperty, http.MethodPost, "/properties",
		`{"title":"Doomed","price":1,"propertyType":"Land"}`)
	require.Equal(t, http.StatusCreated, created.Code)

	var property entity.Property
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &property))

	rec := doJSON(e, h.DeleteProperty, http.MethodDelete, "/properties/x", "", "id", property.ID.Hex())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Property deleted successfully"}`, rec.Body.String())
}

func TestListPropertiesResponseShape(t *testing.T) {
	e, h := newTestServer()

	created := doJSON(e, h.CreateProperty, http.MethodPost, "/properties",
		`{"title":"Lakeview","price":250000,"propertyType":"Villa"}`)
	require.Equal(t, http.StatusCreated, created.Code)

	rec := doJSON(e, h.ListProperties, http.MethodGet, "/properties?propertyType=Villa", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var page map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Contains(t, page, "properties")
	assert.Contains(t, page, "total")
	assert.Contains(t, page, "totalPages")
	assert.Contains(t, page, "currentPage")
}

func filterFor(t *testing.T, query string) repository.PropertyFilter {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/properties?"+query, nil)
	return parseListFilter(e.NewContext(req, httptest.NewRecorder()))
}

func TestParseListFilterAllSentinel(t *testing.T) {
	assert.Equal(t, filterFor(t, ""), filterFor(t, "propertyType=all"))
	assert.Equal(t, "Villa", filterFor(t, "propertyType=Villa").PropertyType)
}

func TestParseListFilterIgnoresMalformedNumbers(t *testing.T) {
	filter := filterFor(t, "minPrice=abc&maxPrice=12x&bedrooms=two")

	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.Nil(t, filter.Bedrooms)
}

func TestParseListFilterParsesRangeAndBools(t *testing.T) {
	filter := filterFor(t, "minPrice=100000&maxPrice=300000&isForSale=true&isForRent=maybe")

	require.NotNil(t, filter.MinPrice)
	require.NotNil(t, filter.MaxPrice)
	assert.Equal(t, 100000.0, *filter.MinPrice)
	assert.Equal(t, 300000.0, *filter.MaxPrice)
	require.NotNil(t, filter.ForSale)
	assert.True(t, *filter.ForSale)
	assert.Nil(t, filter.ForRent)
}

func TestListCacheParamsNormalizesPagination(t *testing.T) {
	e := echo.New()

	reqA := httptest.NewRequest(http.MethodGet, "/properties?page=0&propertyType=Villa", nil)
	cA := e.NewContext(reqA, httptest.NewRecorder())
	reqB := httptest.NewRequest(http.MethodGet, "/properties?page=1&propertyType=Villa", nil)
	cB := e.NewContext(reqB, httptest.NewRecorder())

	paramsA := listCacheParams(cA, utils.GetPaginationParams(cA))
	paramsB := listCacheParams(cB, utils.GetPaginationParams(cB))

	assert.Equal(t, paramsB["limit"], paramsA["limit"])
	assert.Equal(t, paramsB["propertyType"], paramsA["propertyType"])
	assert.Equal(t, "1", paramsA["page"])
	assert.Equal(t, "1", paramsB["page"])
}
