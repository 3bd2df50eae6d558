package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/querying"
	"github.com/vfg2006/app-rank-navi-api/pkg/apiErrors"
)

// GetApp retorna os detalhes de um app pelo ID interno
func GetApp(service querying.QueryingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do app inválido", nil)
			return
		}

		app, err := service.GetApp(id)
		if err != nil {
			logrus.Error("Erro ao buscar app:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar app", nil)
			return
		}

		if app == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "App não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(app)
	}
}

// GetAppHistory retorna a série histórica de posições de um app
func GetAppHistory(service querying.QueryingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do app inválido", nil)
			return
		}

		query := r.URL.Query()

		country := domain.CountryCode(strings.ToUpper(query.Get("country")))
		if country == "" {
			country = domain.CountryJP
		}
		rankingType := domain.RankingType(query.Get("rankingType"))
		if rankingType == "" {
			rankingType = domain.RankingTypeTopGrossing
		}
		categoryType := domain.CategoryType(query.Get("categoryType"))
		if categoryType == "" {
			categoryType = domain.CategoryTypeAll
		}

		if !domain.ValidCountry(country) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "País inválido", nil)
			return
		}
		if !domain.ValidRankingType(rankingType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de ranking inválido", nil)
			return
		}
		if !domain.ValidCategoryType(categoryType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de categoria inválido", nil)
			return
		}

		history, err := service.History(id, country, rankingType, categoryType, query.Get("period"))
		if err != nil {
			logrus.Error("Erro ao buscar histórico do app:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(history)
	}
}

// SearchApps busca apps pelo nome e retorna as posições atuais por país
func SearchApps(service querying.QueryingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		term := strings.TrimSpace(query.Get("q"))
		if term == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o termo de busca no parâmetro q", nil)
			return
		}

		rankingType := domain.RankingType(query.Get("rankingType"))
		if rankingType == "" {
			rankingType = domain.RankingTypeTopGrossing
		}
		categoryType := domain.CategoryType(query.Get("categoryType"))
		if categoryType == "" {
			categoryType = domain.CategoryTypeAll
		}

		if !domain.ValidRankingType(rankingType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de ranking inválido", nil)
			return
		}
		if !domain.ValidCategoryType(categoryType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de categoria inválido", nil)
			return
		}

		results, err := service.SearchApps(term, rankingType, categoryType)
		if err != nil {
			logrus.Error("Erro ao buscar apps:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar apps", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"query":   term,
			"results": results,
		})
	}
}
