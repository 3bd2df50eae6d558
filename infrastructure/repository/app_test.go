package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-rank-navi-api/internal/domain"
)

const appByStoreIDPattern = `SELECT a\.id, a\.app_store_id,(.*) FROM apps a WHERE a\.app_store_id = \$1 AND a\.country = \$2`

func appRow(id int64, now time.Time) *sqlmock.Rows {
	columns := []string{
		"id", "app_store_id", "bundle_id", "name", "artist_name", "artwork_url_100", "artwork_url_512",
		"summary", "category_id", "price", "currency", "release_date", "average_rating", "rating_count",
		"country", "created_at", "updated_at",
	}
	return sqlmock.NewRows(columns).AddRow(
		id, "100", nil, "App Existente", "Artista", "https://example.com/a.png", nil,
		nil, nil, 0.0, "USD", nil, nil, 0,
		"JP", now, now,
	)
}

func TestAppUpsertInsertsWhenMissing(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAppRepository(conn)

	mock.ExpectQuery(appByStoreIDPattern).
		WithArgs("100", "JP").
		WillReturnError(sql.ErrNoRows)

	mock.ExpectQuery(`INSERT INTO apps \(app_store_id,bundle_id,name,artist_name,artwork_url_100,artwork_url_512,summary,category_id,price,currency,release_date,average_rating,rating_count,country\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9,\$10,\$11,\$12,\$13,\$14\) RETURNING id`).
		WithArgs("100", nil, "App Novo", "Artista", "", nil, nil, nil, 0.0, "USD", nil, nil, 0, "JP").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.Upsert(&domain.App{
		AppStoreID: "100",
		Name:       "App Novo",
		ArtistName: "Artista",
		Currency:   "USD",
		Country:    domain.CountryJP,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppUpsertUpdatesWhenExists(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAppRepository(conn)

	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(appByStoreIDPattern).
		WithArgs("100", "JP").
		WillReturnRows(appRow(7, now))

	mock.ExpectExec(`UPDATE apps SET name = \$1,(.*)updated_at = CURRENT_TIMESTAMP WHERE id = \$12`).
		WithArgs("App Atualizado", "Artista", "", nil, nil, nil, 0.0, "USD", nil, nil, 0, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Upsert(&domain.App{
		AppStoreID: "100",
		Name:       "App Atualizado",
		ArtistName: "Artista",
		Currency:   "USD",
		Country:    domain.CountryJP,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id, "a atualização preserva o id interno existente")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppGetByIDNotFound(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAppRepository(conn)

	mock.ExpectQuery(`SELECT a\.id, a\.app_store_id,(.*) FROM apps a WHERE a\.id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	app, err := repo.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, app)
}
