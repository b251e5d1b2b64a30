package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"workbrew/infras/otel"
	"workbrew/shared/cache"
	"workbrew/shared/constant"
)

// Bookmark persists the bookmarked cafe IDs as a single redis set, so both
// add and remove are idempotent for free.
type Bookmark interface {
	All(ctx context.Context) ([]string, error)
	Contains(ctx context.Context, cafeID string) (bool, error)
	Add(ctx context.Context, cafeID string) error
	Remove(ctx context.Context, cafeID string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	otel  otel.Otel
}

func New(redisCache cache.RedisCache, otl otel.Otel) Bookmark {
	return &repositoryImpl{
		cache: redisCache,
		otel:  otl,
	}
}

func (repo *repositoryImpl) All(ctx context.Context) (res []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bookmark.All")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = repo.cache.SetMembers(ctx, constant.BookmarkStorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) Contains(ctx context.Context, cafeID string) (res bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bookmark.Contains")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = repo.cache.SetContains(ctx, constant.BookmarkStorageKey, cafeID)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) Add(ctx context.Context, cafeID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bookmark.Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.cache.SetAdd(ctx, constant.BookmarkStorageKey, cafeID); err != nil {
		return fmt.Errorf("failed to add bookmark: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Remove(ctx context.Context, cafeID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bookmark.Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.cache.SetRemove(ctx, constant.BookmarkStorageKey, cafeID); err != nil {
		return fmt.Errorf("failed to remove bookmark: %w", err)
	}

	return nil
}
