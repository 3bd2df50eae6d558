package appleclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	appledomain "github.com/vfg2006/app-rank-navi-api/infrastructure/integrator/apple/domain"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
)

// FetchAppDetails busca os metadados enriquecidos de um único app.
// Retorna nil quando o lookup não encontra resultado.
func (c *AppleClient) FetchAppDetails(
	ctx context.Context,
	appStoreID string,
	country domain.CountryCode,
) (*appledomain.LookupResult, error) {
	resp, err := c.lookup(ctx, []string{appStoreID}, country)
	if err != nil {
		return nil, err
	}
	if resp.ResultCount == 0 || len(resp.Results) == 0 {
		return nil, nil
	}
	return &resp.Results[0], nil
}

// FetchManyAppDetails busca metadados em lotes de até LookupBatchSize ids, com
// uma pausa fixa entre lotes (nunca após o último) para evitar rate limiting.
// Um lote que falha não contribui com entradas: o chamador enxerga chaves
// ausentes, nunca uma falha total; o mapa só vem vazio se todos os lotes
// falharem.
func (c *AppleClient) FetchManyAppDetails(
	ctx context.Context,
	appStoreIDs []string,
	country domain.CountryCode,
) (map[string]appledomain.LookupResult, error) {
	details := make(map[string]appledomain.LookupResult, len(appStoreIDs))

	for i := 0; i < len(appStoreIDs); i += LookupBatchSize {
		end := i + LookupBatchSize
		if end > len(appStoreIDs) {
			end = len(appStoreIDs)
		}

		resp, err := c.lookup(ctx, appStoreIDs[i:end], country)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"country": country,
				"batch":   i / LookupBatchSize,
				"error":   err.Error(),
			}).Error("apple: falha ao buscar lote de detalhes")
		} else {
			for _, result := range resp.Results {
				details[strconv.FormatInt(result.TrackID, 10)] = result
			}
		}

		if end < len(appStoreIDs) {
			c.sleep(batchDelay)
		}
	}

	return details, nil
}

func (c *AppleClient) lookup(ctx context.Context, appStoreIDs []string, country domain.CountryCode) (*appledomain.LookupResponse, error) {
	countryInfo, ok := domain.Countries[country]
	if !ok {
		return nil, fmt.Errorf("país desconhecido: %s", country)
	}

	url := fmt.Sprintf("%s?id=%s&country=%s", c.Cfg.Apple.LookupBaseURL, strings.Join(appStoreIDs, ","), countryInfo.AppleCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de lookup")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.Cfg.Apple.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar o lookup")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("lookup respondeu %s", resp.Status)
	}

	var response appledomain.LookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do lookup")
	}

	return &response, nil
}
