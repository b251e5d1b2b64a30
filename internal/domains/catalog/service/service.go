package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"math"
	"sort"
	"strings"

	"workbrew/infras/otel"
	"workbrew/internal/domains/catalog/model"
	"workbrew/internal/domains/catalog/model/dto"
	"workbrew/internal/domains/catalog/repository"
	"workbrew/shared/constant"
	gDto "workbrew/shared/dto"
	"workbrew/shared/failure"
)

type Catalog interface {
	List(ctx context.Context, params gDto.QueryParams, filter dto.ListCafesFilter) (dto.GetCafesResponse, error)
	Get(ctx context.Context, slug string) (dto.CafeResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo repository.Catalog
	otel otel.Otel
}

func New(repo repository.Catalog, otl otel.Otel) Catalog {
	return &serviceImpl{
		repo: repo,
		otel: otl,
	}
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, filter dto.ListCafesFilter) (res dto.GetCafesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	cafes := s.repo.All(ctx)
	matched := make([]model.Cafe, 0, len(cafes))

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	for _, cafe := range cafes {
		if search != constant.Empty {
			name := strings.ToLower(cafe.Name)
			address := strings.ToLower(cafe.Address)

			if !strings.Contains(name, search) && !strings.Contains(address, search) {
				continue
			}
		}

		if !hasAllAmenities(cafe, filter.Amenities) {
			continue
		}

		if cafe.Rating < filter.MinRating {
			continue
		}

		matched = append(matched, cafe)
	}

	res.FromModels(paginate(matched, params), len(matched), params.Limit)

	return res, nil
}

func paginate(cafes []model.Cafe, params gDto.QueryParams) []model.Cafe {
	if params.Limit <= 0 {
		return cafes
	}

	start := (params.Page - 1) * params.Limit
	if start < 0 {
		start = 0
	}

	if start >= len(cafes) {
		return nil
	}

	end := start + params.Limit
	if end > len(cafes) {
		end = len(cafes)
	}

	return cafes[start:end]
}

func (s *serviceImpl) Get(ctx context.Context, slug string) (res dto.CafeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cafe, ok := s.repo.Get(ctx, slug)
	if !ok {
		return res, failure.NotFound("cafe not found") //nolint:wrapcheck
	}

	res.FromModel(cafe)

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	cafes := s.repo.All(ctx)

	regions := map[string]int{}
	ratingSum := 0.0

	for _, cafe := range cafes {
		ratingSum += cafe.Rating

		if cafe.Featured {
			res.FeaturedCount++
		}

		if region := regionOf(cafe.Address); region != constant.Empty {
			regions[region]++
		}
	}

	res.TotalCafes = len(cafes)
	res.Regions = make([]dto.RegionCount, 0, len(regions))

	for region, count := range regions {
		res.Regions = append(res.Regions, dto.RegionCount{Region: region, Count: count})
	}

	// most populous region first, ties alphabetical
	sort.Slice(res.Regions, func(i, j int) bool {
		if res.Regions[i].Count != res.Regions[j].Count {
			return res.Regions[i].Count > res.Regions[j].Count
		}

		return res.Regions[i].Region < res.Regions[j].Region
	})

	if len(cafes) > 0 {
		res.AverageRating = math.Round(ratingSum/float64(len(cafes))*10) / 10
	}

	return res, nil
}

// regionOf takes the segment after the last comma of an address, which is the
// city in the seed data.
func regionOf(address string) string {
	idx := strings.LastIndex(address, ",")
	if idx < 0 {
		return strings.TrimSpace(address)
	}

	return strings.TrimSpace(address[idx+1:])
}

func hasAllAmenities(cafe model.Cafe, amenities []string) bool {
	for _, amenity := range amenities {
		if !cafe.HasAmenity(amenity) {
			return false
		}
	}

	return true
}
