package domain

import "time"

// Ranking é o snapshot diário da posição de um app em um contexto de ranking.
// A chave natural (appId, country, rankingType, categoryType, rankDate) é única;
// reingestões no mesmo dia atualizam apenas o campo Rank.
type Ranking struct {
	ID           int64        `json:"id"`
	AppID        int64        `json:"appId"`
	Country      CountryCode  `json:"country"`
	RankingType  RankingType  `json:"rankingType"`
	CategoryType CategoryType `json:"categoryType"`
	Rank         int          `json:"rank"`
	RankDate     time.Time    `json:"rankDate"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// RankingWithApp junta um snapshot com os dados do app referenciado.
type RankingWithApp struct {
	Ranking Ranking `json:"ranking"`
	App     App     `json:"app"`
}

// RankingFilter parametriza a listagem de snapshots de um dia.
type RankingFilter struct {
	Countries    []CountryCode
	RankingType  RankingType
	CategoryType CategoryType
	Date         string // YYYY-MM-DD
	Limit        int
	Offset       int
}

// HistoryFilter parametriza a consulta de histórico de um app.
type HistoryFilter struct {
	AppID        int64
	Country      CountryCode
	RankingType  RankingType
	CategoryType CategoryType
	StartDate    string
	EndDate      string
}

// GroupedRanking agrupa os ranks de um app por país para comparação lado a lado.
type GroupedRanking struct {
	App      App                 `json:"app"`
	Rankings map[CountryCode]int `json:"rankings"`
}

// FetchResult é o retorno da ingestão de uma combinação (país, tipo, categoria).
type FetchResult struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// SweepTaskResult é uma entrada do resultado agregado do "fetch all".
type SweepTaskResult struct {
	Country      CountryCode  `json:"country"`
	RankingType  RankingType  `json:"rankingType"`
	CategoryType CategoryType `json:"categoryType"`
	Success      bool         `json:"success"`
	Count        int          `json:"count"`
}

// SweepSummary agrega os resultados de um sweep completo.
type SweepSummary struct {
	Results      []SweepTaskResult `json:"results"`
	SuccessCount int               `json:"successCount"`
	TotalTasks   int               `json:"totalTasks"`
	TotalApps    int               `json:"totalApps"`
	ElapsedSec   float64           `json:"elapsedSec"`
}
