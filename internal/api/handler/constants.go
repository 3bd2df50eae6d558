package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/app-rank-navi-api/internal/domain"
)

// GetConstants expõe os domínios fixos usados pelo frontend para montar filtros
func GetConstants() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		countries := make([]domain.Country, 0, len(domain.CountryCodes))
		for _, code := range domain.CountryCodes {
			countries = append(countries, domain.Countries[code])
		}

		rankingTypes := make([]domain.RankingTypeInfo, 0, len(domain.RankingTypeIDs))
		for _, id := range domain.RankingTypeIDs {
			rankingTypes = append(rankingTypes, domain.RankingTypes[id])
		}

		categoryTypes := []domain.CategoryTypeInfo{
			domain.CategoryTypes[domain.CategoryTypeAll],
			domain.CategoryTypes[domain.CategoryTypeGames],
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"countries":     countries,
			"rankingTypes":  rankingTypes,
			"categoryTypes": categoryTypes,
			"categories":    domain.AppCategories,
		})
	}
}
