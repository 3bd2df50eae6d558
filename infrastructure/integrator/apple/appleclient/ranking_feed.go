package appleclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	appledomain "github.com/vfg2006/app-rank-navi-api/infrastructure/integrator/apple/domain"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
)

// FeedPath mapeia o tipo de ranking para o segmento de feed upstream.
// O feed da Apple não oferece uma lista "top grossing"; nesse caso usamos
// top-free como substituto mais próximo e sinalizamos com substituted=true.
func FeedPath(rankingType domain.RankingType) (path string, substituted bool) {
	if rankingType == domain.RankingTypeTopPaid {
		return "top-paid", false
	}
	return "top-free", rankingType == domain.RankingTypeTopGrossing
}

// FetchRankingFeed busca a lista de apps de um ranking e normaliza as entradas
// para o shape interno. Os dois formatos de resposta conhecidos (array plano em
// "results" e lista legada "entry") são aceitos; a escolha do parser é feita
// pelo shape da resposta.
func (c *AppleClient) FetchRankingFeed(
	ctx context.Context,
	country domain.CountryCode,
	rankingType domain.RankingType,
	categoryType domain.CategoryType,
	limit int,
) ([]appledomain.FetchedApp, error) {
	countryInfo, ok := domain.Countries[country]
	if !ok {
		return nil, fmt.Errorf("país desconhecido: %s", country)
	}

	feedPath, substituted := FeedPath(rankingType)
	if substituted {
		logrus.WithFields(logrus.Fields{
			"country":      country,
			"ranking_type": rankingType,
			"feed_path":    feedPath,
		}).Debug("apple: feed sem equivalente direto, usando substituto")
	}

	// O feed v2 só filtra por "todos os apps"; categoryType fica registrado
	// apenas na chave do snapshot.
	url := fmt.Sprintf("%s/%s/apps/%s/%d/apps.json", c.Cfg.Apple.FeedBaseURL, countryInfo.AppleCode, feedPath, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição do feed")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.Cfg.Apple.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar o feed de rankings")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("feed de rankings respondeu %s", resp.Status)
	}

	var envelope appledomain.FeedEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o feed de rankings")
	}

	if len(envelope.Feed.Results) > 0 {
		return normalizeFlatFeed(envelope.Feed.Results), nil
	}
	return normalizeLegacyFeed(envelope.Feed.Entry), nil
}

// normalizeFlatFeed converte o formato atual (marketingtools). O feed plano não
// traz preço; fica 0/USD até o enriquecimento.
func normalizeFlatFeed(results []appledomain.FeedApp) []appledomain.FetchedApp {
	apps := make([]appledomain.FetchedApp, 0, len(results))
	for i, r := range results {
		app := appledomain.FetchedApp{
			AppStoreID:    r.ID,
			Name:          r.Name,
			ArtistName:    r.ArtistName,
			ArtworkURL100: r.ArtworkURL100,
			Currency:      "USD",
			ReleaseDate:   r.ReleaseDate,
			Rank:          i + 1,
		}
		if len(r.Genres) > 0 {
			app.CategoryID = r.Genres[0].GenreID
			app.CategoryName = r.Genres[0].Name
		}
		apps = append(apps, app)
	}
	return apps
}

// normalizeLegacyFeed converte o formato legado entry/label/attributes.
func normalizeLegacyFeed(entries []appledomain.LegacyEntry) []appledomain.FetchedApp {
	apps := make([]appledomain.FetchedApp, 0, len(entries))
	for i, e := range entries {
		app := appledomain.FetchedApp{
			AppStoreID:   e.ID.Attributes.ID,
			BundleID:     e.ID.Attributes.BundleID,
			Name:         e.Name.Label,
			ArtistName:   e.Artist.Label,
			Summary:      e.Summary.Label,
			CategoryID:   e.Category.Attributes.ID,
			CategoryName: e.Category.Attributes.Label,
			Currency:     e.Price.Attributes.Currency,
			ReleaseDate:  legacyReleaseDate(e.ReleaseDate),
			Rank:         i + 1,
		}

		// A maior imagem é o último elemento do array
		if n := len(e.Images); n > 0 {
			app.ArtworkURL100 = e.Images[n-1].Label
		}

		if e.Price.Attributes.Amount != "" {
			if amount, err := strconv.ParseFloat(e.Price.Attributes.Amount, 64); err == nil {
				app.Price = amount
			}
		}
		if app.Currency == "" {
			app.Currency = "USD"
		}

		apps = append(apps, app)
	}
	return apps
}

// legacyReleaseDate resolve a data de lançamento do formato legado na ordem:
// label dos attributes → label do campo → horário atual como último recurso.
func legacyReleaseDate(rd *appledomain.LegacyReleaseDate) string {
	if rd != nil {
		if rd.Attributes.Label != "" {
			if t, err := time.Parse("January 2, 2006", rd.Attributes.Label); err == nil {
				return t.Format(time.RFC3339)
			}
		}
		if rd.Label != "" {
			if t, err := time.Parse(time.RFC3339, rd.Label); err == nil {
				return t.Format(time.RFC3339)
			}
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}
