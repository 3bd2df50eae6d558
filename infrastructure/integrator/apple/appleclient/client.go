package appleclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	appledomain "github.com/vfg2006/app-rank-navi-api/infrastructure/integrator/apple/domain"
	"github.com/vfg2006/app-rank-navi-api/internal/config"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limite de ids por requisição de lookup e pausa entre lotes.
const (
	LookupBatchSize = 200
	batchDelay      = 500 * time.Millisecond
)

type Client interface {
	FetchRankingFeed(ctx context.Context, country domain.CountryCode, rankingType domain.RankingType, categoryType domain.CategoryType, limit int) ([]appledomain.FetchedApp, error)
	FetchAppDetails(ctx context.Context, appStoreID string, country domain.CountryCode) (*appledomain.LookupResult, error)
	FetchManyAppDetails(ctx context.Context, appStoreIDs []string, country domain.CountryCode) (map[string]appledomain.LookupResult, error)
}

type AppleClient struct {
	Cfg        *config.Config
	httpClient *http.Client

	// sleep é substituível em testes para não esperar a pausa entre lotes
	sleep func(time.Duration)
}

func NewClient(cfg *config.Config) Client {
	return &AppleClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		sleep: time.Sleep,
	}
}
