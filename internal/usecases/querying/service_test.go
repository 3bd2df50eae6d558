package querying

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/repository/mocks"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockAppRepository, *mocks.MockRankingRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAppRepo := mocks.NewMockAppRepository(ctrl)
	mockRankingRepo := mocks.NewMockRankingRepository(ctrl)

	service := &Service{
		appRepo:     mockAppRepo,
		rankingRepo: mockRankingRepo,
		clock:       func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) },
	}

	return service, mockAppRepo, mockRankingRepo
}

func rankingRow(appStoreID string, appID int64, country domain.CountryCode, rank int) *domain.RankingWithApp {
	return &domain.RankingWithApp{
		Ranking: domain.Ranking{
			AppID:   appID,
			Country: country,
			Rank:    rank,
		},
		App: domain.App{
			ID:         appID,
			AppStoreID: appStoreID,
			Name:       "App " + appStoreID,
			Country:    country,
		},
	}
}

func TestListRankingsGroupsByAppAndSortsByBestRank(t *testing.T) {
	service, _, mockRankingRepo := newTestService(t)

	mockRankingRepo.EXPECT().
		ListByFilter(gomock.Any()).
		Return([]*domain.RankingWithApp{
			rankingRow("100", 1, domain.CountryJP, 3),
			rankingRow("200", 2, domain.CountryJP, 1),
			rankingRow("100", 3, domain.CountryUS, 2),
		}, 3, nil)

	page, err := service.ListRankings(domain.RankingFilter{
		RankingType:  domain.RankingTypeTopFree,
		CategoryType: domain.CategoryTypeAll,
		Date:         "2025-06-09",
	}, 1)

	require.NoError(t, err)
	require.Len(t, page.Items, 2, "o mesmo app em dois países vira uma única entrada")
	assert.Equal(t, 2, page.Total)

	// App 200 tem a melhor posição (1) e vem primeiro
	assert.Equal(t, "200", page.Items[0].App.AppStoreID)
	assert.Equal(t, "100", page.Items[1].App.AppStoreID)
	assert.Equal(t, map[domain.CountryCode]int{
		domain.CountryJP: 3,
		domain.CountryUS: 2,
	}, page.Items[1].Rankings)
}

func TestListRankingsPaginates(t *testing.T) {
	service, _, mockRankingRepo := newTestService(t)

	rows := make([]*domain.RankingWithApp, 0, 45)
	for i := 1; i <= 45; i++ {
		rows = append(rows, rankingRow(string(rune('A'+i%26))+string(rune('0'+i%10))+string(rune('0'+i/10)), int64(i), domain.CountryJP, i))
	}

	mockRankingRepo.EXPECT().
		ListByFilter(gomock.Any()).
		Return(rows, 45, nil)

	page, err := service.ListRankings(domain.RankingFilter{
		RankingType:  domain.RankingTypeTopFree,
		CategoryType: domain.CategoryTypeAll,
		Date:         "2025-06-09",
		Limit:        20,
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, 45, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 5, "a última página carrega o restante")
	assert.Equal(t, 3, page.Page)
}

func TestListRankingsFallsBackToLatestDate(t *testing.T) {
	service, _, mockRankingRepo := newTestService(t)

	latest := "2025-06-08"
	mockRankingRepo.EXPECT().
		LatestDate(domain.CountryJP).
		Return(&latest, nil)

	mockRankingRepo.EXPECT().
		ListByFilter(gomock.Any()).
		DoAndReturn(func(filter domain.RankingFilter) ([]*domain.RankingWithApp, int, error) {
			assert.Equal(t, latest, filter.Date)
			return []*domain.RankingWithApp{}, 0, nil
		})

	page, err := service.ListRankings(domain.RankingFilter{
		RankingType:  domain.RankingTypeTopFree,
		CategoryType: domain.CategoryTypeAll,
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, latest, page.Date)
}

func TestLatestDateFallsBackToToday(t *testing.T) {
	service, _, mockRankingRepo := newTestService(t)

	mockRankingRepo.EXPECT().
		LatestDate(domain.CountryJP).
		Return(nil, nil)

	date, err := service.LatestDate(domain.CountryJP)

	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", date, "sem dados coletados a data de hoje é o fallback")
}

func TestGetAppResolvesCategoryNames(t *testing.T) {
	service, mockAppRepo, _ := newTestService(t)

	categoryID := "6014"
	mockAppRepo.EXPECT().
		GetByID(int64(7)).
		Return(&domain.App{ID: 7, Name: "Jogo", CategoryID: &categoryID}, nil)

	detail, err := service.GetApp(7)

	require.NoError(t, err)
	require.NotNil(t, detail)
	require.NotNil(t, detail.CategoryName)
	assert.Equal(t, "Games", *detail.CategoryName)
	require.NotNil(t, detail.CategoryNameJa)
	assert.Equal(t, "ゲーム", *detail.CategoryNameJa)
}

func TestGetAppNotFound(t *testing.T) {
	service, mockAppRepo, _ := newTestService(t)

	mockAppRepo.EXPECT().
		GetByID(int64(999)).
		Return(nil, nil)

	detail, err := service.GetApp(999)

	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestHistoryComputesStats(t *testing.T) {
	service, _, mockRankingRepo := newTestService(t)

	mockRankingRepo.EXPECT().
		HistoryByApp(gomock.Any()).
		DoAndReturn(func(filter domain.HistoryFilter) ([]*domain.Ranking, error) {
			assert.Equal(t, "2025-06-03", filter.StartDate, "período week cobre os últimos 7 dias")
			assert.Equal(t, "2025-06-10", filter.EndDate)
			return []*domain.Ranking{
				{Rank: 5, RankDate: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)},
				{Rank: 2, RankDate: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
				{Rank: 8, RankDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
			}, nil
		})

	history, err := service.History(1, domain.CountryJP, domain.RankingTypeTopFree, domain.CategoryTypeAll, "week")

	require.NoError(t, err)
	require.Len(t, history.Points, 3)
	require.NotNil(t, history.Stats)
	assert.Equal(t, 2, history.Stats.Highest)
	assert.Equal(t, 8, history.Stats.Lowest)
	assert.InDelta(t, 5.0, history.Stats.Average, 0.001)
	assert.Equal(t, "2025-06-08", history.Points[0].Date)
}

func TestHistoryUnknownPeriodDefaultsToWeek(t *testing.T) {
	service, _, mockRankingRepo := newTestService(t)

	mockRankingRepo.EXPECT().
		HistoryByApp(gomock.Any()).
		Return([]*domain.Ranking{}, nil)

	history, err := service.History(1, domain.CountryJP, domain.RankingTypeTopFree, domain.CategoryTypeAll, "decade")

	require.NoError(t, err)
	assert.Equal(t, "week", history.Period)
	assert.Empty(t, history.Points)
	assert.Nil(t, history.Stats, "sem pontos não há estatísticas")
}

func TestSearchAppsDeduplicatesAcrossCountries(t *testing.T) {
	service, mockAppRepo, mockRankingRepo := newTestService(t)

	mockAppRepo.EXPECT().
		Search("puzzle", domain.CountryCodes, domain.MaxPageSize).
		Return([]*domain.App{
			{ID: 1, AppStoreID: "100", Name: "Puzzle Master", Country: domain.CountryJP},
			{ID: 2, AppStoreID: "100", Name: "Puzzle Master", Country: domain.CountryUS},
		}, nil)

	latest := "2025-06-09"
	mockRankingRepo.EXPECT().
		LatestDate(domain.CountryJP).
		Return(&latest, nil)

	mockRankingRepo.EXPECT().
		RanksAcrossCountries("100", domain.CountryCodes, domain.RankingTypeTopFree, domain.CategoryTypeAll, latest).
		Return(map[domain.CountryCode]int{domain.CountryJP: 4, domain.CountryUS: 11}, nil)

	results, err := service.SearchApps("puzzle", domain.RankingTypeTopFree, domain.CategoryTypeAll)

	require.NoError(t, err)
	require.Len(t, results, 1, "o mesmo appStoreId em dois países vira um resultado único")
	assert.Equal(t, map[domain.CountryCode]int{domain.CountryJP: 4, domain.CountryUS: 11}, results[0].Rankings)
}
