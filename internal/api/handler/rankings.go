package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/ingesting"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/querying"
	"github.com/vfg2006/app-rank-navi-api/pkg/apiErrors"
	"github.com/vfg2006/app-rank-navi-api/pkg/utils"
)

type FetchRankingRequest struct {
	Country      domain.CountryCode  `json:"country"`
	RankingType  domain.RankingType  `json:"rankingType"`
	CategoryType domain.CategoryType `json:"categoryType"`
}

// GetRankings lista os rankings de um dia agrupados por app
func GetRankings(service querying.QueryingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := domain.RankingFilter{
			RankingType:  domain.RankingType(query.Get("rankingType")),
			CategoryType: domain.CategoryType(query.Get("categoryType")),
			Date:         query.Get("date"),
		}

		if filter.RankingType == "" {
			filter.RankingType = domain.RankingTypeTopGrossing
		}
		if filter.CategoryType == "" {
			filter.CategoryType = domain.CategoryTypeAll
		}

		if !domain.ValidRankingType(filter.RankingType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de ranking inválido", nil)
			return
		}
		if !domain.ValidCategoryType(filter.CategoryType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de categoria inválido", nil)
			return
		}

		if countries := query.Get("country"); countries != "" {
			for _, code := range strings.Split(countries, ",") {
				country := domain.CountryCode(strings.ToUpper(strings.TrimSpace(code)))
				if !domain.ValidCountry(country) {
					apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "País inválido: "+code, nil)
					return
				}
				filter.Countries = append(filter.Countries, country)
			}
		}

		if filter.Date != "" {
			if _, err := utils.ParseDate(filter.Date); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
				return
			}
		}

		page := 1
		if p, err := strconv.Atoi(query.Get("page")); err == nil && p > 0 {
			page = p
		}
		if size, err := strconv.Atoi(query.Get("pageSize")); err == nil && size > 0 {
			filter.Limit = size
		}

		result, err := service.ListRankings(filter, page)
		if err != nil {
			logrus.Error("Erro ao listar rankings:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar rankings", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error("Erro ao enviar resposta dos rankings:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetLatestRankingDate retorna a data do snapshot mais recente
func GetLatestRankingDate(service querying.QueryingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country := domain.CountryCode(strings.ToUpper(r.URL.Query().Get("country")))
		if country == "" {
			country = domain.CountryJP
		}
		if !domain.ValidCountry(country) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "País inválido", nil)
			return
		}

		date, err := service.LatestDate(country)
		if err != nil {
			logrus.Error("Erro ao buscar data mais recente:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar data mais recente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"date": date,
		})
	}
}

// FetchRanking dispara a ingestão de uma combinação específica
func FetchRanking(service ingesting.IngestingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FetchRankingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.CategoryType == "" {
			req.CategoryType = domain.CategoryTypeAll
		}

		if !domain.ValidCountry(req.Country) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "País inválido", nil)
			return
		}
		if !domain.ValidRankingType(req.RankingType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de ranking inválido", nil)
			return
		}
		if !domain.ValidCategoryType(req.CategoryType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de categoria inválido", nil)
			return
		}

		result := service.FetchOne(r.Context(), req.Country, req.RankingType, req.CategoryType)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// FetchAllRankings dispara o sweep completo de ingestão de forma síncrona
func FetchAllRankings(service ingesting.IngestingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - FetchAllRankings")

		summary := service.FetchAll(r.Context())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}
