// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/app-rank-navi-api/infrastructure/database/postgres"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
)

const (
	appsTable = "apps a"
)

var appColumns = []string{
	"a.id",
	"a.app_store_id",
	"a.bundle_id",
	"a.name",
	"a.artist_name",
	"a.artwork_url_100",
	"a.artwork_url_512",
	"a.summary",
	"a.category_id",
	"a.price",
	"a.currency",
	"a.release_date",
	"a.average_rating",
	"a.rating_count",
	"a.country",
	"a.created_at",
	"a.updated_at",
}

type AppRepository interface {
	Upsert(app *domain.App) (int64, error)
	GetByID(id int64) (*domain.App, error)
	GetByStoreID(appStoreID string, country domain.CountryCode) (*domain.App, error)
	Search(query string, countries []domain.CountryCode, limit int) ([]*domain.App, error)
}

type appRepository struct {
	conn *postgres.Connection
}

func NewAppRepository(conn *postgres.Connection) AppRepository {
	return &appRepository{
		conn: conn,
	}
}

// Upsert localiza o app pela chave natural (app_store_id, country); se existe,
// atualiza todos os campos mutáveis, senão insere e retorna o novo id interno.
func (r *appRepository) Upsert(app *domain.App) (int64, error) {
	existing, err := r.GetByStoreID(app.AppStoreID, app.Country)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar app existente: %w", err)
	}

	if existing != nil {
		query, args, err := squirrel.
			Update("apps").
			Set("name", app.Name).
			Set("artist_name", app.ArtistName).
			Set("artwork_url_100", app.ArtworkURL100).
			Set("artwork_url_512", app.ArtworkURL512).
			Set("summary", app.Summary).
			Set("category_id", app.CategoryID).
			Set("price", app.Price).
			Set("currency", app.Currency).
			Set("release_date", app.ReleaseDate).
			Set("average_rating", app.AverageRating).
			Set("rating_count", app.RatingCount).
			Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
			Where(squirrel.Eq{"id": existing.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("erro ao construir query de atualização: %w", err)
		}

		if _, err := r.conn.Exec(query, args...); err != nil {
			return 0, fmt.Errorf("erro ao atualizar app: %w", err)
		}

		return existing.ID, nil
	}

	query, args, err := squirrel.
		Insert("apps").
		Columns(
			"app_store_id",
			"bundle_id",
			"name",
			"artist_name",
			"artwork_url_100",
			"artwork_url_512",
			"summary",
			"category_id",
			"price",
			"currency",
			"release_date",
			"average_rating",
			"rating_count",
			"country",
		).
		Values(
			app.AppStoreID,
			app.BundleID,
			app.Name,
			app.ArtistName,
			app.ArtworkURL100,
			app.ArtworkURL512,
			app.Summary,
			app.CategoryID,
			app.Price,
			app.Currency,
			app.ReleaseDate,
			app.AverageRating,
			app.RatingCount,
			app.Country,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir app: %w", err)
	}

	return id, nil
}

func (r *appRepository) GetByID(id int64) (*domain.App, error) {
	query, args, err := squirrel.
		Select(appColumns...).
		From(appsTable).
		Where(squirrel.Eq{"a.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	app, err := r.scanAppRow(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear app: %w", err)
	}

	return app, nil
}

func (r *appRepository) GetByStoreID(appStoreID string, country domain.CountryCode) (*domain.App, error) {
	query, args, err := squirrel.
		Select(appColumns...).
		From(appsTable).
		Where(squirrel.Eq{"a.app_store_id": appStoreID, "a.country": country}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	app, err := r.scanAppRow(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear app: %w", err)
	}

	return app, nil
}

// Search busca apps por nome (case-insensitive) nos países informados.
func (r *appRepository) Search(query string, countries []domain.CountryCode, limit int) ([]*domain.App, error) {
	sqlQuery, args, err := squirrel.
		Select(appColumns...).
		From(appsTable).
		Where(squirrel.ILike{"a.name": "%" + query + "%"}).
		Where(squirrel.Eq{"a.country": countries}).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	apps := make([]*domain.App, 0)
	for rows.Next() {
		app, err := r.scanApp(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear app: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return apps, nil
}

func (r *appRepository) scanApp(rows *sql.Rows) (*domain.App, error) {
	app := &domain.App{}
	err := rows.Scan(
		&app.ID,
		&app.AppStoreID,
		&app.BundleID,
		&app.Name,
		&app.ArtistName,
		&app.ArtworkURL100,
		&app.ArtworkURL512,
		&app.Summary,
		&app.CategoryID,
		&app.Price,
		&app.Currency,
		&app.ReleaseDate,
		&app.AverageRating,
		&app.RatingCount,
		&app.Country,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *appRepository) scanAppRow(row *sql.Row) (*domain.App, error) {
	app := &domain.App{}
	err := row.Scan(
		&app.ID,
		&app.AppStoreID,
		&app.BundleID,
		&app.Name,
		&app.ArtistName,
		&app.ArtworkURL100,
		&app.ArtworkURL512,
		&app.Summary,
		&app.CategoryID,
		&app.Price,
		&app.Currency,
		&app.ReleaseDate,
		&app.AverageRating,
		&app.RatingCount,
		&app.Country,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return app, nil
}
