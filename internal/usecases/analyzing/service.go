// Package analyzing contém o caso de uso de análise de tendências via LLM
package analyzing

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/repository"
	"github.com/vfg2006/app-rank-navi-api/internal/config"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
)

const (
	// Quantidade de posições do topo enviadas no prompt
	topEntries = 20

	fallbackMessage = "A análise de tendências está temporariamente indisponível. Tente novamente mais tarde."

	systemPrompt = "Você é um analista de mercado mobile. Analise os rankings da App Store " +
		"fornecidos e descreva as principais tendências: categorias em alta, apps em destaque " +
		"e padrões entre países. Responda em texto corrido, de forma objetiva."
)

// TrendRequest parametriza a análise de tendências.
type TrendRequest struct {
	Countries    []domain.CountryCode `json:"countries"`
	RankingType  domain.RankingType   `json:"rankingType"`
	CategoryType domain.CategoryType  `json:"categoryType"`
	Date         string               `json:"date"`
}

// TrendAnalysis é o resultado da análise, com Degraded sinalizando que o texto
// é a mensagem fixa de indisponibilidade.
type TrendAnalysis struct {
	Analysis string `json:"analysis"`
	Degraded bool   `json:"degraded"`
}

type AnalyzingService interface {
	Trends(ctx context.Context, req TrendRequest) (*TrendAnalysis, error)
}

type Service struct {
	llmClient   llmclient.Client
	rankingRepo repository.RankingRepository
	config      *config.Config
}

func NewService(llmClient llmclient.Client, rankingRepo repository.RankingRepository, cfg *config.Config) *Service {
	return &Service{
		llmClient:   llmClient,
		rankingRepo: rankingRepo,
		config:      cfg,
	}
}

// Trends monta um resumo do topo dos rankings do dia e pede ao backend de
// geração uma leitura das tendências. Falhas do backend degradam para uma
// mensagem fixa em vez de propagar erro.
func (s *Service) Trends(ctx context.Context, req TrendRequest) (*TrendAnalysis, error) {
	if !s.config.LLM.Enabled {
		return &TrendAnalysis{Analysis: fallbackMessage, Degraded: true}, nil
	}

	countries := req.Countries
	if len(countries) == 0 {
		countries = domain.CountryCodes
	}

	rankings, _, err := s.rankingRepo.ListByFilter(domain.RankingFilter{
		Countries:    countries,
		RankingType:  req.RankingType,
		CategoryType: req.CategoryType,
		Date:         req.Date,
		Limit:        topEntries,
	})
	if err != nil {
		return nil, err
	}

	if len(rankings) == 0 {
		return &TrendAnalysis{Analysis: fallbackMessage, Degraded: true}, nil
	}

	analysis, err := s.llmClient.Complete(ctx, []llmclient.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildPrompt(req, rankings)},
	})
	if err != nil {
		logrus.WithError(err).Error("análise: backend de geração indisponível, degradando")
		return &TrendAnalysis{Analysis: fallbackMessage, Degraded: true}, nil
	}

	return &TrendAnalysis{Analysis: analysis}, nil
}

func buildPrompt(req TrendRequest, rankings []*domain.RankingWithApp) string {
	var sb strings.Builder

	typeInfo := domain.RankingTypes[req.RankingType]
	fmt.Fprintf(&sb, "Ranking: %s (%s) em %s\n\n", typeInfo.Name, req.RankingType, req.Date)

	for _, ranking := range rankings {
		category := ""
		if ranking.App.CategoryID != nil {
			if info, ok := domain.AppCategories[*ranking.App.CategoryID]; ok {
				category = info.Name
			}
		}
		fmt.Fprintf(&sb, "%d. [%s] %s - %s (%s)\n",
			ranking.Ranking.Rank,
			ranking.Ranking.Country,
			ranking.App.Name,
			ranking.App.ArtistName,
			category,
		)
	}

	return sb.String()
}
