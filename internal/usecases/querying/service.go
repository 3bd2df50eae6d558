// Package querying contém os casos de uso de leitura dos rankings coletados
package querying

import (
	"sort"
	"time"

	"github.com/vfg2006/app-rank-navi-api/infrastructure/repository"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
)

// RankingPage é a resposta paginada da listagem de rankings, com os apps
// agrupados e suas posições por país.
type RankingPage struct {
	Date       string                  `json:"date"`
	Items      []domain.GroupedRanking `json:"items"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"pageSize"`
	TotalPages int                     `json:"totalPages"`
}

// HistoryStats resume a série de posições de um app no período.
type HistoryStats struct {
	Highest int     `json:"highest"`
	Lowest  int     `json:"lowest"`
	Average float64 `json:"average"`
}

// HistoryPoint é um ponto da série temporal de posições.
type HistoryPoint struct {
	Date string `json:"date"`
	Rank int    `json:"rank"`
}

// AppHistory é a resposta do histórico de posições de um app.
type AppHistory struct {
	AppID        int64               `json:"appId"`
	Country      domain.CountryCode  `json:"country"`
	RankingType  domain.RankingType  `json:"rankingType"`
	CategoryType domain.CategoryType `json:"categoryType"`
	Period       string              `json:"period"`
	Points       []HistoryPoint      `json:"points"`
	Stats        *HistoryStats       `json:"stats,omitempty"`
}

// SearchResult é um app encontrado na busca com suas posições atuais por país.
type SearchResult struct {
	App      domain.App                 `json:"app"`
	Rankings map[domain.CountryCode]int `json:"rankings"`
}

type QueryingService interface {
	ListRankings(filter domain.RankingFilter, page int) (*RankingPage, error)
	LatestDate(country domain.CountryCode) (string, error)
	GetApp(id int64) (*domain.AppDetail, error)
	History(appID int64, country domain.CountryCode, rankingType domain.RankingType, categoryType domain.CategoryType, period string) (*AppHistory, error)
	SearchApps(query string, rankingType domain.RankingType, categoryType domain.CategoryType) ([]SearchResult, error)
}

type Service struct {
	appRepo     repository.AppRepository
	rankingRepo repository.RankingRepository

	clock func() time.Time
}

func NewService(appRepo repository.AppRepository, rankingRepo repository.RankingRepository) *Service {
	return &Service{
		appRepo:     appRepo,
		rankingRepo: rankingRepo,
		clock:       time.Now,
	}
}

// ListRankings lista o snapshot de um dia agrupando as posições por app, de
// modo que o mesmo app ranqueado em vários países apareça uma única vez com o
// mapa país → posição. A ordenação é pela melhor posição entre os países.
func (s *Service) ListRankings(filter domain.RankingFilter, page int) (*RankingPage, error) {
	if filter.Date == "" {
		latest, err := s.LatestDate(s.referenceCountry(filter.Countries))
		if err != nil {
			return nil, err
		}
		filter.Date = latest
	}

	pageSize := filter.Limit
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	if pageSize > domain.MaxPageSize {
		pageSize = domain.MaxPageSize
	}
	if page < 1 {
		page = 1
	}

	// A paginação é aplicada após o agrupamento: buscamos o snapshot inteiro
	// do dia e paginamos sobre os apps agrupados
	listFilter := filter
	listFilter.Limit = 0
	listFilter.Offset = 0

	rankings, _, err := s.rankingRepo.ListByFilter(listFilter)
	if err != nil {
		return nil, err
	}

	grouped := groupByApp(rankings)
	total := len(grouped)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &RankingPage{
		Date:       filter.Date,
		Items:      grouped[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// LatestDate retorna a data do snapshot mais recente do país; quando ainda não
// há dados, retorna a data de hoje (UTC) para a interface ter um valor útil.
func (s *Service) LatestDate(country domain.CountryCode) (string, error) {
	date, err := s.rankingRepo.LatestDate(country)
	if err != nil {
		return "", err
	}
	if date == nil {
		return s.clock().UTC().Format(time.DateOnly), nil
	}
	return *date, nil
}

// GetApp retorna o app com os nomes de categoria resolvidos. Retorna nil quando
// o app não existe.
func (s *Service) GetApp(id int64) (*domain.AppDetail, error) {
	app, err := s.appRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, nil
	}

	detail := &domain.AppDetail{App: *app}
	if app.CategoryID != nil {
		if category, ok := domain.AppCategories[*app.CategoryID]; ok {
			detail.CategoryName = &category.Name
			detail.CategoryNameJa = &category.NameJa
		}
	}

	return detail, nil
}

// History retorna a série de posições de um app no período (week, month ou
// year) com as estatísticas de melhor, pior e posição média.
func (s *Service) History(
	appID int64,
	country domain.CountryCode,
	rankingType domain.RankingType,
	categoryType domain.CategoryType,
	period string,
) (*AppHistory, error) {
	endDate := s.clock().UTC()
	var startDate time.Time

	switch period {
	case "year":
		startDate = endDate.AddDate(-1, 0, 0)
	case "month":
		startDate = endDate.AddDate(0, -1, 0)
	default:
		period = "week"
		startDate = endDate.AddDate(0, 0, -7)
	}

	rankings, err := s.rankingRepo.HistoryByApp(domain.HistoryFilter{
		AppID:        appID,
		Country:      country,
		RankingType:  rankingType,
		CategoryType: categoryType,
		StartDate:    startDate.Format(time.DateOnly),
		EndDate:      endDate.Format(time.DateOnly),
	})
	if err != nil {
		return nil, err
	}

	history := &AppHistory{
		AppID:        appID,
		Country:      country,
		RankingType:  rankingType,
		CategoryType: categoryType,
		Period:       period,
		Points:       make([]HistoryPoint, 0, len(rankings)),
	}

	if len(rankings) == 0 {
		return history, nil
	}

	stats := &HistoryStats{Highest: rankings[0].Rank, Lowest: rankings[0].Rank}
	sum := 0
	for _, ranking := range rankings {
		history.Points = append(history.Points, HistoryPoint{
			Date: ranking.RankDate.Format(time.DateOnly),
			Rank: ranking.Rank,
		})

		if ranking.Rank < stats.Highest {
			stats.Highest = ranking.Rank
		}
		if ranking.Rank > stats.Lowest {
			stats.Lowest = ranking.Rank
		}
		sum += ranking.Rank
	}
	stats.Average = float64(sum) / float64(len(rankings))
	history.Stats = stats

	return history, nil
}

// SearchApps busca apps por nome e anexa as posições do snapshot mais recente
// em todos os países monitorados.
func (s *Service) SearchApps(
	query string,
	rankingType domain.RankingType,
	categoryType domain.CategoryType,
) ([]SearchResult, error) {
	apps, err := s.appRepo.Search(query, domain.CountryCodes, domain.MaxPageSize)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(apps))
	seen := make(map[string]bool, len(apps))

	for _, app := range apps {
		// O mesmo appStoreId pode existir em vários países; a busca devolve
		// uma entrada única com o mapa de posições
		if seen[app.AppStoreID] {
			continue
		}
		seen[app.AppStoreID] = true

		date, err := s.LatestDate(app.Country)
		if err != nil {
			return nil, err
		}

		ranks, err := s.rankingRepo.RanksAcrossCountries(app.AppStoreID, domain.CountryCodes, rankingType, categoryType, date)
		if err != nil {
			return nil, err
		}

		results = append(results, SearchResult{App: *app, Rankings: ranks})
	}

	return results, nil
}

func (s *Service) referenceCountry(countries []domain.CountryCode) domain.CountryCode {
	if len(countries) > 0 {
		return countries[0]
	}
	return domain.CountryJP
}

// groupByApp agrupa as posições por appStoreId e ordena pela melhor posição.
func groupByApp(rankings []*domain.RankingWithApp) []domain.GroupedRanking {
	index := make(map[string]int)
	grouped := make([]domain.GroupedRanking, 0)

	for _, ranking := range rankings {
		pos, ok := index[ranking.App.AppStoreID]
		if !ok {
			pos = len(grouped)
			index[ranking.App.AppStoreID] = pos
			grouped = append(grouped, domain.GroupedRanking{
				App:      ranking.App,
				Rankings: make(map[domain.CountryCode]int),
			})
		}
		grouped[pos].Rankings[ranking.Ranking.Country] = ranking.Ranking.Rank
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return bestRank(grouped[i].Rankings) < bestRank(grouped[j].Rankings)
	})

	return grouped
}

func bestRank(rankings map[domain.CountryCode]int) int {
	best := int(^uint(0) >> 1)
	for _, rank := range rankings {
		if rank < best {
			best = rank
		}
	}
	return best
}
