package domain

import "time"

// App representa um aplicativo como visto na loja de um país específico.
// O mesmo appStoreId em dois países são duas linhas distintas (preço, nome e
// avaliações variam por locale).
type App struct {
	ID            int64       `json:"id"`
	AppStoreID    string      `json:"appStoreId"`
	BundleID      *string     `json:"bundleId,omitempty"`
	Name          string      `json:"name"`
	ArtistName    string      `json:"artistName"`
	ArtworkURL100 string      `json:"artworkUrl100"`
	ArtworkURL512 *string     `json:"artworkUrl512,omitempty"`
	Summary       *string     `json:"summary,omitempty"`
	CategoryID    *string     `json:"categoryId,omitempty"`
	Price         float64     `json:"price"`
	Currency      string      `json:"currency"`
	ReleaseDate   *time.Time  `json:"releaseDate,omitempty"`
	AverageRating *float64    `json:"averageRating,omitempty"`
	RatingCount   int         `json:"ratingCount"`
	Country       CountryCode `json:"country"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// AppDetail é um App acrescido dos nomes de categoria resolvidos.
type AppDetail struct {
	App
	CategoryName   *string `json:"categoryName,omitempty"`
	CategoryNameJa *string `json:"categoryNameJa,omitempty"`
}
