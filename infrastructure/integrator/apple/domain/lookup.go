package domain

// LookupResponse é a resposta da API de lookup do iTunes:
// {resultCount, results[]}.
type LookupResponse struct {
	ResultCount int            `json:"resultCount"`
	Results     []LookupResult `json:"results"`
}

// LookupResult carrega os metadados enriquecidos de um app.
type LookupResult struct {
	TrackID           int64   `json:"trackId"`
	TrackName         string  `json:"trackName"`
	BundleID          string  `json:"bundleId"`
	ArtistName        string  `json:"artistName"`
	ArtworkURL100     string  `json:"artworkUrl100"`
	ArtworkURL512     string  `json:"artworkUrl512"`
	Description       string  `json:"description"`
	PrimaryGenreName  string  `json:"primaryGenreName"`
	PrimaryGenreID    int64   `json:"primaryGenreId"`
	Price             float64 `json:"price"`
	FormattedPrice    string  `json:"formattedPrice"`
	Currency          string  `json:"currency"`
	ReleaseDate       string  `json:"releaseDate"`
	AverageUserRating float64 `json:"averageUserRating"`
	UserRatingCount   int     `json:"userRatingCount"`
}
