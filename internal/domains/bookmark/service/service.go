package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"sort"

	"workbrew/infras/otel"
	"workbrew/internal/domains/bookmark/model/dto"
	"workbrew/internal/domains/bookmark/repository"
	catalogRepo "workbrew/internal/domains/catalog/repository"
	"workbrew/shared/constant"
	"workbrew/shared/failure"
)

type Bookmark interface {
	All(ctx context.Context) (dto.GetBookmarksResponse, error)
	Contains(ctx context.Context, cafeID string) (dto.ContainsResponse, error)
	Add(ctx context.Context, cafeID string) error
	Remove(ctx context.Context, cafeID string) error
}

type serviceImpl struct {
	repo    repository.Bookmark
	catalog catalogRepo.Catalog
	otel    otel.Otel
}

func New(repo repository.Bookmark, catalog catalogRepo.Catalog, otl otel.Otel) Bookmark {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		otel:    otl,
	}
}

func (s *serviceImpl) All(ctx context.Context) (res dto.GetBookmarksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".All")
	defer scope.End()
	defer scope.TraceIfError(err)

	ids, err := s.repo.All(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	sort.Strings(ids)

	res.CafeIDs = ids
	res.TotalData = len(ids)

	return res, nil
}

func (s *serviceImpl) Contains(ctx context.Context, cafeID string) (res dto.ContainsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Contains")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookmarked, err := s.repo.Contains(ctx, cafeID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.CafeID = cafeID
	res.Bookmarked = bookmarked

	return res, nil
}

// Add bookmarks a cafe. Only catalog entries can be bookmarked; re-adding is
// a no-op.
func (s *serviceImpl) Add(ctx context.Context, cafeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.catalog.Exist(ctx, cafeID) {
		return failure.NotFound("cafe not found") //nolint:wrapcheck
	}

	return s.repo.Add(ctx, cafeID) //nolint:wrapcheck
}

func (s *serviceImpl) Remove(ctx context.Context, cafeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.repo.Remove(ctx, cafeID) //nolint:wrapcheck
}
