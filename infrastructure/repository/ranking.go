package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/database/postgres"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
)

const (
	rankingsTable = "rankings r"
)

type RankingRepository interface {
	Upsert(ranking *domain.Ranking) error
	ListByFilter(filter domain.RankingFilter) ([]*domain.RankingWithApp, int, error)
	HistoryByApp(filter domain.HistoryFilter) ([]*domain.Ranking, error)
	LatestDate(country domain.CountryCode) (*string, error)
	RanksAcrossCountries(appStoreID string, countries []domain.CountryCode, rankingType domain.RankingType, categoryType domain.CategoryType, date string) (map[domain.CountryCode]int, error)
}

type rankingRepository struct {
	conn *postgres.Connection
}

func NewRankingRepository(conn *postgres.Connection) RankingRepository {
	return &rankingRepository{
		conn: conn,
	}
}

// Upsert grava a posição de um app no snapshot diário. Reexecuções do mesmo dia
// apenas atualizam o rank, porque a chave natural garante a idempotência.
func (r *rankingRepository) Upsert(ranking *domain.Ranking) error {
	query, args, err := squirrel.
		Insert("rankings").
		Columns(
			"app_id",
			"country",
			"ranking_type",
			"category_type",
			"rank",
			"rank_date",
		).
		Values(
			ranking.AppID,
			ranking.Country,
			ranking.RankingType,
			ranking.CategoryType,
			ranking.Rank,
			ranking.RankDate,
		).
		Suffix(`ON CONFLICT (app_id, country, ranking_type, category_type, rank_date)
			DO UPDATE SET rank = EXCLUDED.rank`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de upsert: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar ranking: %w", err)
	}

	return nil
}

// ListByFilter retorna as posições do snapshot com os dados do app, mais o total
// de linhas que casam com o filtro (para paginação).
func (r *rankingRepository) ListByFilter(filter domain.RankingFilter) ([]*domain.RankingWithApp, int, error) {
	base := squirrel.
		Select().
		From(rankingsTable).
		Join("apps a ON a.id = r.app_id").
		Where(squirrel.Eq{"r.ranking_type": filter.RankingType}).
		Where(squirrel.Eq{"r.category_type": filter.CategoryType}).
		Where(squirrel.Expr("date(r.rank_date) = ?", filter.Date))

	if len(filter.Countries) > 0 {
		base = base.Where(squirrel.Eq{"r.country": filter.Countries})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir query de contagem: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar rankings: %w", err)
	}

	columns := append([]string{
		"r.id",
		"r.app_id",
		"r.country",
		"r.ranking_type",
		"r.category_type",
		"r.rank",
		"r.rank_date",
		"r.created_at",
	}, appColumns...)

	builder := base.Columns(columns...).
		OrderBy("r.rank ASC")

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]*domain.RankingWithApp, 0)
	for rows.Next() {
		ranking, err := r.scanRankingWithApp(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear ranking: %w", err)
		}
		rankings = append(rankings, ranking)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rankings, total, nil
}

// HistoryByApp retorna a série temporal de posições de um app, em ordem
// cronológica crescente.
func (r *rankingRepository) HistoryByApp(filter domain.HistoryFilter) ([]*domain.Ranking, error) {
	query, args, err := squirrel.
		Select(
			"r.id",
			"r.app_id",
			"r.country",
			"r.ranking_type",
			"r.category_type",
			"r.rank",
			"r.rank_date",
			"r.created_at",
		).
		From(rankingsTable).
		Where(squirrel.Eq{"r.app_id": filter.AppID}).
		Where(squirrel.Eq{"r.country": filter.Country}).
		Where(squirrel.Eq{"r.ranking_type": filter.RankingType}).
		Where(squirrel.Eq{"r.category_type": filter.CategoryType}).
		Where(squirrel.Expr("date(r.rank_date) >= ?", filter.StartDate)).
		Where(squirrel.Expr("date(r.rank_date) <= ?", filter.EndDate)).
		OrderBy("r.rank_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]*domain.Ranking, 0)
	for rows.Next() {
		ranking := &domain.Ranking{}
		err := rows.Scan(
			&ranking.ID,
			&ranking.AppID,
			&ranking.Country,
			&ranking.RankingType,
			&ranking.CategoryType,
			&ranking.Rank,
			&ranking.RankDate,
			&ranking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
		}
		rankings = append(rankings, ranking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rankings, nil
}

// LatestDate retorna a data (YYYY-MM-DD) do snapshot mais recente do país, ou
// nil quando ainda não há dados coletados.
func (r *rankingRepository) LatestDate(country domain.CountryCode) (*string, error) {
	query, args, err := squirrel.
		Select("to_char(MAX(r.rank_date), 'YYYY-MM-DD')").
		From(rankingsTable).
		Where(squirrel.Eq{"r.country": country}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var date sql.NullString
	if err := r.conn.QueryRow(query, args...).Scan(&date); err != nil {
		return nil, fmt.Errorf("erro ao buscar data mais recente: %w", err)
	}

	if !date.Valid {
		return nil, nil
	}

	return &date.String, nil
}

// RanksAcrossCountries retorna, por país, a posição do app identificado pelo
// app_store_id na data informada. Países sem posição ficam de fora do mapa.
func (r *rankingRepository) RanksAcrossCountries(
	appStoreID string,
	countries []domain.CountryCode,
	rankingType domain.RankingType,
	categoryType domain.CategoryType,
	date string,
) (map[domain.CountryCode]int, error) {
	query, args, err := squirrel.
		Select("r.country", "r.rank").
		From(rankingsTable).
		Join("apps a ON a.id = r.app_id").
		Where(squirrel.Eq{"a.app_store_id": appStoreID}).
		Where(squirrel.Eq{"r.country": countries}).
		Where(squirrel.Eq{"r.ranking_type": rankingType}).
		Where(squirrel.Eq{"r.category_type": categoryType}).
		Where(squirrel.Expr("date(r.rank_date) = ?", date)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ranks := make(map[domain.CountryCode]int)
	for rows.Next() {
		var country domain.CountryCode
		var rank int
		if err := rows.Scan(&country, &rank); err != nil {
			return nil, fmt.Errorf("erro ao escanear posição: %w", err)
		}
		ranks[country] = rank
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ranks, nil
}

func (r *rankingRepository) scanRankingWithApp(rows *sql.Rows) (*domain.RankingWithApp, error) {
	ranking := &domain.RankingWithApp{}
	err := rows.Scan(
		&ranking.Ranking.ID,
		&ranking.Ranking.AppID,
		&ranking.Ranking.Country,
		&ranking.Ranking.RankingType,
		&ranking.Ranking.CategoryType,
		&ranking.Ranking.Rank,
		&ranking.Ranking.RankDate,
		&ranking.Ranking.CreatedAt,
		&ranking.App.ID,
		&ranking.App.AppStoreID,
		&ranking.App.BundleID,
		&ranking.App.Name,
		&ranking.App.ArtistName,
		&ranking.App.ArtworkURL100,
		&ranking.App.ArtworkURL512,
		&ranking.App.Summary,
		&ranking.App.CategoryID,
		&ranking.App.Price,
		&ranking.App.Currency,
		&ranking.App.ReleaseDate,
		&ranking.App.AverageRating,
		&ranking.App.RatingCount,
		&ranking.App.Country,
		&ranking.App.CreatedAt,
		&ranking.App.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ranking, nil
}
