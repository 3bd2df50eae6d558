// Package ingesting contém o caso de uso de ingestão dos rankings da App Store
package ingesting

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/integrator/apple/appleclient"
	appledomain "github.com/vfg2006/app-rank-navi-api/infrastructure/integrator/apple/domain"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/repository"
	"github.com/vfg2006/app-rank-navi-api/internal/config"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
	"github.com/vfg2006/app-rank-navi-api/pkg/retry"
)

const (
	// Pausa entre as tarefas do sweep para não martelar o feed
	taskDelay = time.Second

	// Limite de caracteres do resumo vindo do lookup
	summaryMaxLen = 500
)

type IngestingService interface {
	FetchOne(ctx context.Context, country domain.CountryCode, rankingType domain.RankingType, categoryType domain.CategoryType) domain.FetchResult
	FetchAll(ctx context.Context) domain.SweepSummary
}

type Service struct {
	appleClient appleclient.Client
	appRepo     repository.AppRepository
	rankingRepo repository.RankingRepository
	config      *config.Config

	// clock e sleep são substituíveis em testes
	clock func() time.Time
	sleep func(time.Duration)
}

func NewService(
	appleClient appleclient.Client,
	appRepo repository.AppRepository,
	rankingRepo repository.RankingRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		appleClient: appleClient,
		appRepo:     appRepo,
		rankingRepo: rankingRepo,
		config:      cfg,
		clock:       time.Now,
		sleep:       time.Sleep,
	}
}

// FetchOne ingere uma combinação (país, tipo de ranking, categoria): busca o
// feed com retry, enriquece via lookup e grava apps e posições. Linhas que
// falham ao persistir são registradas e puladas; o Count reflete as entradas do
// feed processadas, não as gravadas.
func (s *Service) FetchOne(
	ctx context.Context,
	country domain.CountryCode,
	rankingType domain.RankingType,
	categoryType domain.CategoryType,
) domain.FetchResult {
	fetched, err := retry.Do(func() ([]appledomain.FetchedApp, error) {
		return s.appleClient.FetchRankingFeed(ctx, country, rankingType, categoryType, s.config.RankingSync.FeedLimit)
	}, retry.Options{
		Label: fmt.Sprintf("feed %s/%s/%s", country, rankingType, categoryType),
		Sleep: s.sleep,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"country":      country,
			"ranking_type": rankingType,
			"error":        err.Error(),
		}).Error("ingestão: feed indisponível após todas as tentativas")
		return domain.FetchResult{Success: false, Count: 0, Message: err.Error()}
	}

	if len(fetched) == 0 {
		logrus.WithFields(logrus.Fields{
			"country":      country,
			"ranking_type": rankingType,
		}).Warn("ingestão: feed retornou vazio")
		return domain.FetchResult{Success: false, Count: 0, Message: "feed vazio"}
	}

	appStoreIDs := make([]string, 0, len(fetched))
	for _, app := range fetched {
		appStoreIDs = append(appStoreIDs, app.AppStoreID)
	}

	details, err := retry.Do(func() (map[string]appledomain.LookupResult, error) {
		return s.appleClient.FetchManyAppDetails(ctx, appStoreIDs, country)
	}, retry.Options{
		Label: fmt.Sprintf("lookup %s/%s/%s", country, rankingType, categoryType),
		Sleep: s.sleep,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"country":      country,
			"ranking_type": rankingType,
			"error":        err.Error(),
		}).Warn("ingestão: lookup indisponível após todas as tentativas, seguindo só com o feed")
		details = map[string]appledomain.LookupResult{}
	}

	rankDate := s.snapshotDate()
	persisted := 0

	for _, entry := range fetched {
		app := s.buildApp(entry, details, country)

		appID, err := s.appRepo.Upsert(app)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"country":      country,
				"app_store_id": entry.AppStoreID,
				"error":        err.Error(),
			}).Error("ingestão: erro ao gravar app, pulando entrada")
			continue
		}

		ranking := &domain.Ranking{
			AppID:        appID,
			Country:      country,
			RankingType:  rankingType,
			CategoryType: categoryType,
			Rank:         entry.Rank,
			RankDate:     rankDate,
		}
		if err := s.rankingRepo.Upsert(ranking); err != nil {
			logrus.WithFields(logrus.Fields{
				"country":      country,
				"app_store_id": entry.AppStoreID,
				"rank":         entry.Rank,
				"error":        err.Error(),
			}).Error("ingestão: erro ao gravar posição, pulando entrada")
			continue
		}

		persisted++
	}

	logrus.WithFields(logrus.Fields{
		"country":      country,
		"ranking_type": rankingType,
		"count":        len(fetched),
		"persisted":    persisted,
	}).Info("ingestão: combinação concluída")

	return domain.FetchResult{Success: true, Count: len(fetched)}
}

// FetchAll varre todas as combinações de país e tipo de ranking com a categoria
// "all", com uma pausa fixa entre as tarefas. Uma tarefa que falha não
// interrompe o sweep.
func (s *Service) FetchAll(ctx context.Context) domain.SweepSummary {
	startedAt := s.clock()

	summary := domain.SweepSummary{
		Results: make([]domain.SweepTaskResult, 0, len(domain.CountryCodes)*len(domain.RankingTypeIDs)),
	}

	first := true
	for _, country := range domain.CountryCodes {
		for _, rankingType := range domain.RankingTypeIDs {
			if !first {
				s.sleep(s.sweepDelay())
			}
			first = false

			result := s.FetchOne(ctx, country, rankingType, domain.CategoryTypeAll)

			summary.Results = append(summary.Results, domain.SweepTaskResult{
				Country:      country,
				RankingType:  rankingType,
				CategoryType: domain.CategoryTypeAll,
				Success:      result.Success,
				Count:        result.Count,
			})
			summary.TotalTasks++
			summary.TotalApps += result.Count
			if result.Success {
				summary.SuccessCount++
			}
		}
	}

	summary.ElapsedSec = s.clock().Sub(startedAt).Seconds()

	logrus.WithFields(logrus.Fields{
		"success_count": summary.SuccessCount,
		"total_tasks":   summary.TotalTasks,
		"total_apps":    summary.TotalApps,
		"elapsed_sec":   summary.ElapsedSec,
	}).Info("ingestão: sweep completo concluído")

	return summary
}

// buildApp monta o registro do app combinando a entrada do feed com o resultado
// do lookup, quando disponível. O lookup tem precedência nos campos que ele
// preenche; o feed permanece como fallback.
func (s *Service) buildApp(
	entry appledomain.FetchedApp,
	details map[string]appledomain.LookupResult,
	country domain.CountryCode,
) *domain.App {
	app := &domain.App{
		AppStoreID:    entry.AppStoreID,
		Name:          entry.Name,
		ArtistName:    entry.ArtistName,
		ArtworkURL100: entry.ArtworkURL100,
		Price:         entry.Price,
		Currency:      entry.Currency,
		Country:       country,
	}

	if entry.BundleID != "" {
		app.BundleID = ptr(entry.BundleID)
	}
	if entry.Summary != "" {
		app.Summary = ptr(entry.Summary)
	}
	if entry.CategoryID != "" {
		app.CategoryID = ptr(entry.CategoryID)
	}
	if entry.ReleaseDate != "" {
		if t, err := time.Parse(time.RFC3339, entry.ReleaseDate); err == nil {
			app.ReleaseDate = ptr(t)
		}
	}

	lookup, ok := details[entry.AppStoreID]
	if !ok {
		return app
	}

	if lookup.TrackName != "" {
		app.Name = lookup.TrackName
	}
	if lookup.ArtistName != "" {
		app.ArtistName = lookup.ArtistName
	}
	if lookup.BundleID != "" {
		app.BundleID = ptr(lookup.BundleID)
	}
	if lookup.ArtworkURL100 != "" {
		app.ArtworkURL100 = lookup.ArtworkURL100
	}
	if lookup.ArtworkURL512 != "" {
		app.ArtworkURL512 = ptr(lookup.ArtworkURL512)
	}
	if lookup.Description != "" {
		app.Summary = ptr(truncate(lookup.Description, summaryMaxLen))
	}
	// O feed tem precedência no categoryId; o gênero primário do lookup cobre
	// os casos em que o feed não trouxe categoria
	if app.CategoryID == nil && lookup.PrimaryGenreID > 0 {
		app.CategoryID = ptr(strconv.FormatInt(lookup.PrimaryGenreID, 10))
	}
	if lookup.Currency != "" {
		app.Currency = lookup.Currency
	}
	app.Price = lookup.Price
	if lookup.ReleaseDate != "" {
		if t, err := time.Parse(time.RFC3339, lookup.ReleaseDate); err == nil {
			app.ReleaseDate = ptr(t)
		}
	}
	if lookup.AverageUserRating > 0 {
		app.AverageRating = ptr(lookup.AverageUserRating)
	}
	app.RatingCount = lookup.UserRatingCount

	return app
}

// sweepDelay é a pausa entre tarefas do sweep, configurável via
// RANKING_SYNC_REQUEST_DELAY_SECONDS.
func (s *Service) sweepDelay() time.Duration {
	if s.config.RankingSync.DelaySeconds > 0 {
		return time.Duration(s.config.RankingSync.DelaySeconds) * time.Second
	}
	return taskDelay
}

// snapshotDate normaliza o instante atual para a meia-noite UTC do dia, de modo
// que reingestões do mesmo dia caiam na mesma chave natural.
func (s *Service) snapshotDate() time.Time {
	now := s.clock().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

func ptr[T any](v T) *T {
	return &v
}
