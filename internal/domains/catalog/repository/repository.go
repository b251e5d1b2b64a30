package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"workbrew/config"
	"workbrew/infras/otel"
	"workbrew/internal/domains/catalog/model"
	"workbrew/shared/constant"

	_ "embed"

	"github.com/rs/zerolog/log"
)

//go:embed data/cafes.json
var seedCafes []byte

type Catalog interface {
	All(ctx context.Context) []model.Cafe
	Get(ctx context.Context, slug string) (model.Cafe, bool)
	Exist(ctx context.Context, slug string) bool
}

type repositoryImpl struct {
	otel  otel.Otel
	cafes []model.Cafe
	index map[string]int
}

// New loads the catalog into memory. CATALOG_PATH overrides the embedded
// seed file; the catalog is immutable after startup.
func New(cfg *config.Config, otl otel.Otel) (Catalog, error) {
	raw := seedCafes

	if cfg.Catalog.Path != "" {
		content, err := os.ReadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %s: %w", cfg.Catalog.Path, err)
		}

		raw = content
	}

	var cafes []model.Cafe
	if err := json.Unmarshal(raw, &cafes); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	index := make(map[string]int, len(cafes))
	for i, cafe := range cafes {
		if _, ok := index[cafe.ID]; ok {
			return nil, fmt.Errorf("duplicate cafe id in catalog: %s", cafe.ID)
		}

		index[cafe.ID] = i
	}

	log.Info().Int("cafes", len(cafes)).Msg("Catalog loaded")

	return &repositoryImpl{
		otel:  otl,
		cafes: cafes,
		index: index,
	}, nil
}

func (repo *repositoryImpl) All(ctx context.Context) []model.Cafe {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cafe.All")
	defer scope.End()

	out := make([]model.Cafe, len(repo.cafes))
	copy(out, repo.cafes)

	return out
}

func (repo *repositoryImpl) Get(ctx context.Context, slug string) (model.Cafe, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cafe.Get")
	defer scope.End()

	i, ok := repo.index[slug]
	if !ok {
		return model.Cafe{}, false
	}

	return repo.cafes[i], true
}

func (repo *repositoryImpl) Exist(ctx context.Context, slug string) bool {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cafe.Exist")
	defer scope.End()

	_, ok := repo.index[slug]

	return ok
}
