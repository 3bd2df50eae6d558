package ingesting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appledomain "github.com/vfg2006/app-rank-navi-api/infrastructure/integrator/apple/domain"
	applemocks "github.com/vfg2006/app-rank-navi-api/infrastructure/integrator/apple/mocks"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/repository/mocks"
	"github.com/vfg2006/app-rank-navi-api/internal/config"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *applemocks.MockClient, *mocks.MockAppRepository, *mocks.MockRankingRepository, *[]time.Duration) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockApple := applemocks.NewMockClient(ctrl)
	mockAppRepo := mocks.NewMockAppRepository(ctrl)
	mockRankingRepo := mocks.NewMockRankingRepository(ctrl)

	slept := &[]time.Duration{}

	service := &Service{
		appleClient: mockApple,
		appRepo:     mockAppRepo,
		rankingRepo: mockRankingRepo,
		config: &config.Config{
			RankingSync: config.RankingSync{FeedLimit: 100},
		},
		clock: func() time.Time { return time.Date(2025, 6, 10, 22, 0, 0, 0, time.UTC) },
		sleep: func(d time.Duration) { *slept = append(*slept, d) },
	}

	return service, mockApple, mockAppRepo, mockRankingRepo, slept
}

func TestFetchOneMergesLookupOverFeed(t *testing.T) {
	service, mockApple, mockAppRepo, mockRankingRepo, _ := newTestService(t)
	ctx := context.Background()

	longDescription := strings.Repeat("あ", 600)

	mockApple.EXPECT().
		FetchRankingFeed(ctx, domain.CountryJP, domain.RankingTypeTopFree, domain.CategoryTypeAll, 100).
		Return([]appledomain.FetchedApp{
			{
				AppStoreID:   "123",
				Name:         "Nome do Feed",
				ArtistName:   "Artista do Feed",
				CategoryID:   "6014",
				CategoryName: "Games",
				Currency:     "USD",
				Rank:         1,
			},
		}, nil)

	mockApple.EXPECT().
		FetchManyAppDetails(ctx, []string{"123"}, domain.CountryJP).
		Return(map[string]appledomain.LookupResult{
			"123": {
				TrackID:           123,
				TrackName:         "Nome do Lookup",
				BundleID:          "com.example.app",
				ArtworkURL512:     "https://example.com/512.png",
				Description:       longDescription,
				PrimaryGenreID:    6016,
				Price:             3.99,
				Currency:          "JPY",
				AverageUserRating: 4.5,
				UserRatingCount:   1200,
			},
		}, nil)

	var savedApp *domain.App
	mockAppRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(app *domain.App) (int64, error) {
			savedApp = app
			return 77, nil
		})

	var savedRanking *domain.Ranking
	mockRankingRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(ranking *domain.Ranking) error {
			savedRanking = ranking
			return nil
		})

	result := service.FetchOne(ctx, domain.CountryJP, domain.RankingTypeTopFree, domain.CategoryTypeAll)

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Count)

	require.NotNil(t, savedApp)
	assert.Equal(t, "Nome do Lookup", savedApp.Name, "o nome do lookup tem precedência sobre o do feed")
	require.NotNil(t, savedApp.CategoryID)
	assert.Equal(t, "6014", *savedApp.CategoryID, "a categoria do feed tem precedência sobre o gênero do lookup")
	require.NotNil(t, savedApp.Summary)
	assert.Equal(t, 500, len([]rune(*savedApp.Summary)), "o resumo do lookup é truncado em 500 caracteres")
	assert.Equal(t, 3.99, savedApp.Price)
	assert.Equal(t, "JPY", savedApp.Currency)
	require.NotNil(t, savedApp.AverageRating)
	assert.Equal(t, 4.5, *savedApp.AverageRating)
	assert.Equal(t, 1200, savedApp.RatingCount)

	require.NotNil(t, savedRanking)
	assert.Equal(t, int64(77), savedRanking.AppID)
	assert.Equal(t, 1, savedRanking.Rank)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), savedRanking.RankDate, "a data do snapshot é normalizada para a meia-noite UTC")
}

func TestFetchOneUsesLookupGenreWhenFeedHasNoCategory(t *testing.T) {
	service, mockApple, mockAppRepo, mockRankingRepo, _ := newTestService(t)
	ctx := context.Background()

	mockApple.EXPECT().
		FetchRankingFeed(ctx, domain.CountryUS, domain.RankingTypeTopPaid, domain.CategoryTypeAll, 100).
		Return([]appledomain.FetchedApp{
			{AppStoreID: "999", Name: "App Sem Categoria", Rank: 1},
		}, nil)

	mockApple.EXPECT().
		FetchManyAppDetails(ctx, []string{"999"}, domain.CountryUS).
		Return(map[string]appledomain.LookupResult{
			"999": {TrackID: 999, PrimaryGenreID: 6014},
		}, nil)

	var savedApp *domain.App
	mockAppRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(app *domain.App) (int64, error) {
			savedApp = app
			return 1, nil
		})
	mockRankingRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	result := service.FetchOne(ctx, domain.CountryUS, domain.RankingTypeTopPaid, domain.CategoryTypeAll)

	require.True(t, result.Success)
	require.NotNil(t, savedApp.CategoryID)
	assert.Equal(t, "6014", *savedApp.CategoryID)
}

func TestFetchOneRetriesUntilExhaustion(t *testing.T) {
	service, mockApple, _, _, slept := newTestService(t)
	ctx := context.Background()

	mockApple.EXPECT().
		FetchRankingFeed(ctx, domain.CountryCN, domain.RankingTypeTopGrossing, domain.CategoryTypeAll, 100).
		Return(nil, errors.New("upstream indisponível")).
		Times(3)

	result := service.FetchOne(ctx, domain.CountryCN, domain.RankingTypeTopGrossing, domain.CategoryTypeAll)

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.Count)
	assert.Contains(t, result.Message, "upstream indisponível")
	assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second}, *slept, "pausa fixa entre as tentativas, nunca após a última")
}

func TestFetchOneEmptyFeedIsNotRetried(t *testing.T) {
	service, mockApple, _, _, slept := newTestService(t)
	ctx := context.Background()

	mockApple.EXPECT().
		FetchRankingFeed(ctx, domain.CountryKR, domain.RankingTypeTopFree, domain.CategoryTypeAll, 100).
		Return([]appledomain.FetchedApp{}, nil).
		Times(1)

	result := service.FetchOne(ctx, domain.CountryKR, domain.RankingTypeTopFree, domain.CategoryTypeAll)

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, *slept, "feed vazio é resposta válida, não dispara retry")
}

func TestFetchOneSkipsRowsThatFailToPersist(t *testing.T) {
	service, mockApple, mockAppRepo, mockRankingRepo, _ := newTestService(t)
	ctx := context.Background()

	mockApple.EXPECT().
		FetchRankingFeed(ctx, domain.CountryJP, domain.RankingTypeTopFree, domain.CategoryTypeAll, 100).
		Return([]appledomain.FetchedApp{
			{AppStoreID: "1", Name: "A", Rank: 1},
			{AppStoreID: "2", Name: "B", Rank: 2},
			{AppStoreID: "3", Name: "C", Rank: 3},
		}, nil)

	mockApple.EXPECT().
		FetchManyAppDetails(ctx, []string{"1", "2", "3"}, domain.CountryJP).
		Return(map[string]appledomain.LookupResult{}, nil)

	gomock.InOrder(
		mockAppRepo.EXPECT().Upsert(gomock.Any()).Return(int64(1), nil),
		mockAppRepo.EXPECT().Upsert(gomock.Any()).Return(int64(0), errors.New("erro de banco")),
		mockAppRepo.EXPECT().Upsert(gomock.Any()).Return(int64(3), nil),
	)
	mockRankingRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)

	result := service.FetchOne(ctx, domain.CountryJP, domain.RankingTypeTopFree, domain.CategoryTypeAll)

	assert.True(t, result.Success, "uma linha com falha não derruba a combinação")
	assert.Equal(t, 3, result.Count, "o contador reflete as entradas do feed, mesmo com falha de persistência")
}

func TestFetchOneCountsFeedEntriesWhenRankingUpsertFails(t *testing.T) {
	service, mockApple, mockAppRepo, mockRankingRepo, _ := newTestService(t)
	ctx := context.Background()

	mockApple.EXPECT().
		FetchRankingFeed(ctx, domain.CountryJP, domain.RankingTypeTopFree, domain.CategoryTypeAll, 100).
		Return([]appledomain.FetchedApp{
			{AppStoreID: "1", Name: "A", Rank: 1},
			{AppStoreID: "2", Name: "B", Rank: 2},
		}, nil)

	mockApple.EXPECT().
		FetchManyAppDetails(ctx, []string{"1", "2"}, domain.CountryJP).
		Return(map[string]appledomain.LookupResult{}, nil)

	mockAppRepo.EXPECT().Upsert(gomock.Any()).Return(int64(1), nil).Times(2)
	gomock.InOrder(
		mockRankingRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("erro de banco")),
		mockRankingRepo.EXPECT().Upsert(gomock.Any()).Return(nil),
	)

	result := service.FetchOne(ctx, domain.CountryJP, domain.RankingTypeTopFree, domain.CategoryTypeAll)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Count)
}

func TestFetchOneRetriesLookupAndDegradesToFeedData(t *testing.T) {
	service, mockApple, mockAppRepo, mockRankingRepo, slept := newTestService(t)
	ctx := context.Background()

	mockApple.EXPECT().
		FetchRankingFeed(ctx, domain.CountryGB, domain.RankingTypeTopFree, domain.CategoryTypeAll, 100).
		Return([]appledomain.FetchedApp{
			{AppStoreID: "55", Name: "Só Feed", ArtistName: "Artista", Rank: 1},
		}, nil)

	mockApple.EXPECT().
		FetchManyAppDetails(ctx, []string{"55"}, domain.CountryGB).
		Return(nil, errors.New("lookup indisponível")).
		Times(3)

	var savedApp *domain.App
	mockAppRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(app *domain.App) (int64, error) {
			savedApp = app
			return 5, nil
		})
	mockRankingRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	result := service.FetchOne(ctx, domain.CountryGB, domain.RankingTypeTopFree, domain.CategoryTypeAll)

	require.True(t, result.Success, "lookup esgotado não derruba a combinação")
	assert.Equal(t, 1, result.Count)

	require.NotNil(t, savedApp)
	assert.Equal(t, "Só Feed", savedApp.Name, "sem lookup, os dados do feed são gravados como estão")
	assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second}, *slept, "o lookup em lote também passa pelo retry")
}

func TestFetchAllSweepsAllCombinations(t *testing.T) {
	service, mockApple, _, _, slept := newTestService(t)
	ctx := context.Background()

	// Ordem determinística: países JP,US,GB,CN,KR × tipos grossing,free,paid
	var seen []string
	mockApple.EXPECT().
		FetchRankingFeed(ctx, gomock.Any(), gomock.Any(), domain.CategoryTypeAll, 100).
		DoAndReturn(func(_ context.Context, country domain.CountryCode, rankingType domain.RankingType, _ domain.CategoryType, _ int) ([]appledomain.FetchedApp, error) {
			seen = append(seen, string(country)+"/"+string(rankingType))
			return nil, errors.New("indisponível")
		}).
		Times(15 * 3) // 15 combinações, 3 tentativas cada

	summary := service.FetchAll(ctx)

	assert.Equal(t, 15, summary.TotalTasks)
	assert.Equal(t, 0, summary.SuccessCount)
	assert.Equal(t, 0, summary.TotalApps)
	assert.Len(t, summary.Results, 15)

	assert.Equal(t, "JP/topgrossing", seen[0])
	assert.Equal(t, "JP/topfree", seen[3])
	assert.Equal(t, "KR/toppaid", seen[len(seen)-3])

	// 14 pausas de 1s entre tarefas + 2 pausas de retry de 5s por tarefa
	pacing := 0
	for _, d := range *slept {
		if d == time.Second {
			pacing++
		}
	}
	assert.Equal(t, 14, pacing, "pausa entre tarefas, nunca antes da primeira")
}

func TestFetchAllUsesConfiguredDelay(t *testing.T) {
	service, mockApple, _, _, slept := newTestService(t)
	service.config.RankingSync.DelaySeconds = 2
	ctx := context.Background()

	mockApple.EXPECT().
		FetchRankingFeed(ctx, gomock.Any(), gomock.Any(), domain.CategoryTypeAll, 100).
		Return([]appledomain.FetchedApp{}, nil).
		Times(15)

	service.FetchAll(ctx)

	assert.Len(t, *slept, 14)
	for _, d := range *slept {
		assert.Equal(t, 2*time.Second, d, "a pausa entre tarefas vem da configuração")
	}
}

func TestFetchAllAggregatesCounts(t *testing.T) {
	service, mockApple, mockAppRepo, mockRankingRepo, _ := newTestService(t)
	ctx := context.Background()

	mockApple.EXPECT().
		FetchRankingFeed(ctx, gomock.Any(), gomock.Any(), domain.CategoryTypeAll, 100).
		Return([]appledomain.FetchedApp{{AppStoreID: "1", Name: "A", Rank: 1}}, nil).
		Times(15)
	mockApple.EXPECT().
		FetchManyAppDetails(ctx, []string{"1"}, gomock.Any()).
		Return(map[string]appledomain.LookupResult{}, nil).
		Times(15)
	mockAppRepo.EXPECT().Upsert(gomock.Any()).Return(int64(1), nil).Times(15)
	mockRankingRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(15)

	summary := service.FetchAll(ctx)

	assert.Equal(t, 15, summary.TotalTasks)
	assert.Equal(t, 15, summary.SuccessCount)
	assert.Equal(t, 15, summary.TotalApps)
}
