package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"workbrew/config"
	"workbrew/infras/otel/mocks"
	"workbrew/internal/domains/catalog/model/dto"
	"workbrew/internal/domains/catalog/repository"
	"workbrew/internal/domains/catalog/service"
	gDto "workbrew/shared/dto"
	"workbrew/shared/failure"
)

// newService runs against the embedded seed catalog of nine cafes.
func newService(t *testing.T) service.Catalog {
	t.Helper()

	repo, err := repository.New(&config.Config{}, mocks.NewOtel())
	assert.NoError(t, err)

	return service.New(repo, mocks.NewOtel())
}

func TestCatalogService_List(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name      string
		filter    dto.ListCafesFilter
		wantTotal int
		wantIDs   []string
	}{
		{
			name:      "no filter returns everything",
			filter:    dto.ListCafesFilter{},
			wantTotal: 9,
		},
		{
			name:      "search matches the name",
			filter:    dto.ListCafesFilter{Search: "brew"},
			wantTotal: 1,
			wantIDs:   []string{"brew-and-code-lekki"},
		},
		{
			name:      "search matches the address",
			filter:    dto.ListCafesFilter{Search: "ibadan"},
			wantTotal: 1,
			wantIDs:   []string{"kudeti-house-ibadan"},
		},
		{
			name:      "search is case-insensitive",
			filter:    dto.ListCafesFilter{Search: "GRIND"},
			wantTotal: 1,
			wantIDs:   []string{"the-grind-victoria-island"},
		},
		{
			name:      "amenity filter requires every amenity",
			filter:    dto.ListCafesFilter{Amenities: []string{"quiet-zone", "meeting-rooms"}},
			wantTotal: 2,
			wantIDs:   []string{"brew-and-code-lekki", "quiet-corner-surulere"},
		},
		{
			name:      "minimum rating",
			filter:    dto.ListCafesFilter{MinRating: 4.7},
			wantTotal: 4,
		},
		{
			name:      "filters combine",
			filter:    dto.ListCafesFilter{Search: "lagos", Amenities: []string{"outdoor-seating"}, MinRating: 4.7},
			wantTotal: 2,
			wantIDs:   []string{"garden-roast-ikoyi", "terrace-view-ikeja"},
		},
		{
			name:      "nothing matches",
			filter:    dto.ListCafesFilter{Search: "nonexistent cafe"},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.List(context.Background(), gDto.QueryParams{Page: 1, Limit: 50}, tt.filter)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.TotalData)
			assert.Len(t, result.Cafes, tt.wantTotal)

			if tt.wantIDs != nil {
				ids := make([]string, len(result.Cafes))
				for i, cafe := range result.Cafes {
					ids[i] = cafe.ID
				}

				assert.ElementsMatch(t, tt.wantIDs, ids)
			}
		})
	}
}

func TestCatalogService_List_Pagination(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name      string
		params    gDto.QueryParams
		wantCount int
		wantPages int
	}{
		{
			name:      "first page of four",
			params:    gDto.QueryParams{Page: 1, Limit: 4},
			wantCount: 4,
			wantPages: 3,
		},
		{
			name:      "last page is partial",
			params:    gDto.QueryParams{Page: 3, Limit: 4},
			wantCount: 1,
			wantPages: 3,
		},
		{
			name:      "page beyond the data is empty",
			params:    gDto.QueryParams{Page: 4, Limit: 4},
			wantCount: 0,
			wantPages: 3,
		},
		{
			name:      "zero limit returns everything",
			params:    gDto.QueryParams{},
			wantCount: 9,
			wantPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.List(context.Background(), tt.params, dto.ListCafesFilter{})

			assert.NoError(t, err)
			assert.Equal(t, 9, result.TotalData)
			assert.Equal(t, tt.wantPages, result.TotalPage)
			assert.Len(t, result.Cafes, tt.wantCount)
		})
	}
}

func TestCatalogService_Get(t *testing.T) {
	svc := newService(t)

	t.Run("existing cafe", func(t *testing.T) {
		result, err := svc.Get(context.Background(), "brew-and-code-lekki")

		assert.NoError(t, err)
		assert.Equal(t, "brew-and-code-lekki", result.ID)
		assert.Equal(t, "Brew & Code", result.Name)
		assert.True(t, result.Featured)
	})

	t.Run("unknown cafe", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "no-such-cafe")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCatalogService_Stats(t *testing.T) {
	svc := newService(t)

	result, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 9, result.TotalCafes)
	assert.Equal(t, 4, result.FeaturedCount)
	assert.InDelta(t, 4.6, result.AverageRating, 0.001)
	assert.Equal(t, []dto.RegionCount{
		{Region: "Lagos", Count: 7},
		{Region: "Abuja", Count: 1},
		{Region: "Ibadan", Count: 1},
	}, result.Regions)
}
