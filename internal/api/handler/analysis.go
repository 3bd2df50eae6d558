package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/analyzing"
	"github.com/vfg2006/app-rank-navi-api/pkg/apiErrors"
	"github.com/vfg2006/app-rank-navi-api/pkg/utils"
)

// AnalyzeTrends gera a análise de tendências do ranking via LLM
func AnalyzeTrends(service analyzing.AnalyzingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzing.TrendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.RankingType == "" {
			req.RankingType = domain.RankingTypeTopGrossing
		}
		if req.CategoryType == "" {
			req.CategoryType = domain.CategoryTypeAll
		}

		for _, country := range req.Countries {
			if !domain.ValidCountry(country) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "País inválido: "+string(country), nil)
				return
			}
		}
		if !domain.ValidRankingType(req.RankingType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de ranking inválido", nil)
			return
		}
		if !domain.ValidCategoryType(req.CategoryType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de categoria inválido", nil)
			return
		}

		if req.Date != "" {
			if _, err := utils.ParseDate(req.Date); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
				return
			}
		}

		analysis, err := service.Trends(r.Context(), req)
		if err != nil {
			logrus.Error("Erro ao gerar análise de tendências:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar análise", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(analysis)
	}
}
