package analyzing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/integrator/llm/llmclient"
	llmmocks "github.com/vfg2006/app-rank-navi-api/infrastructure/integrator/llm/mocks"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/repository/mocks"
	"github.com/vfg2006/app-rank-navi-api/internal/config"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, enabled bool) (*Service, *llmmocks.MockClient, *mocks.MockRankingRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLLM := llmmocks.NewMockClient(ctrl)
	mockRankingRepo := mocks.NewMockRankingRepository(ctrl)

	service := NewService(mockLLM, mockRankingRepo, &config.Config{
		LLM: config.LLM{Enabled: enabled},
	})

	return service, mockLLM, mockRankingRepo
}

func sampleRankings() []*domain.RankingWithApp {
	categoryID := "6014"
	return []*domain.RankingWithApp{
		{
			Ranking: domain.Ranking{Country: domain.CountryJP, Rank: 1},
			App:     domain.App{Name: "Jogo Popular", ArtistName: "Estúdio X", CategoryID: &categoryID},
		},
		{
			Ranking: domain.Ranking{Country: domain.CountryUS, Rank: 2},
			App:     domain.App{Name: "Outro App", ArtistName: "Estúdio Y"},
		},
	}
}

func TestTrendsReturnsAnalysis(t *testing.T) {
	service, mockLLM, mockRankingRepo := newTestService(t, true)
	ctx := context.Background()

	mockRankingRepo.EXPECT().
		ListByFilter(gomock.Any()).
		DoAndReturn(func(filter domain.RankingFilter) ([]*domain.RankingWithApp, int, error) {
			assert.Equal(t, 20, filter.Limit, "apenas o topo do ranking vai para o prompt")
			assert.Equal(t, domain.CountryCodes, filter.Countries, "sem países informados usa todos os monitorados")
			return sampleRankings(), 2, nil
		})

	mockLLM.EXPECT().
		Complete(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, messages []llmclient.Message) (string, error) {
			require.Len(t, messages, 2)
			assert.Equal(t, "system", messages[0].Role)
			assert.Contains(t, messages[1].Content, "1. [JP] Jogo Popular - Estúdio X (Games)")
			return "Tendência de jogos casuais em alta no Japão.", nil
		})

	result, err := service.Trends(ctx, TrendRequest{
		RankingType:  domain.RankingTypeTopFree,
		CategoryType: domain.CategoryTypeAll,
		Date:         "2025-06-09",
	})

	require.NoError(t, err)
	assert.False(t, result.Degraded)
	assert.Equal(t, "Tendência de jogos casuais em alta no Japão.", result.Analysis)
}

func TestTrendsDegradesWhenDisabled(t *testing.T) {
	service, _, _ := newTestService(t, false)

	result, err := service.Trends(context.Background(), TrendRequest{})

	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, fallbackMessage, result.Analysis)
}

func TestTrendsDegradesOnBackendError(t *testing.T) {
	service, mockLLM, mockRankingRepo := newTestService(t, true)
	ctx := context.Background()

	mockRankingRepo.EXPECT().
		ListByFilter(gomock.Any()).
		Return(sampleRankings(), 2, nil)

	mockLLM.EXPECT().
		Complete(ctx, gomock.Any()).
		Return("", errors.New("timeout"))

	result, err := service.Trends(ctx, TrendRequest{
		RankingType: domain.RankingTypeTopFree,
		Date:        "2025-06-09",
	})

	require.NoError(t, err, "falha do backend não vira erro para o chamador")
	assert.True(t, result.Degraded)
	assert.Equal(t, fallbackMessage, result.Analysis)
}

func TestTrendsDegradesWithoutData(t *testing.T) {
	service, _, mockRankingRepo := newTestService(t, true)

	mockRankingRepo.EXPECT().
		ListByFilter(gomock.Any()).
		Return([]*domain.RankingWithApp{}, 0, nil)

	result, err := service.Trends(context.Background(), TrendRequest{
		RankingType: domain.RankingTypeTopFree,
		Date:        "2025-06-09",
	})

	require.NoError(t, err)
	assert.True(t, result.Degraded)
}
