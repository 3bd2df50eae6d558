package domain

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FetchedApp é o registro normalizado de uma entrada de feed de ranking.
// Os dois formatos de feed upstream são convertidos para este shape; nomes de
// campos específicos de um formato não vazam além do cliente.
//
// Rank é sempre derivado da posição na lista retornada (1-based), nunca de um
// campo de rank do payload, o que garante ranks contíguos 1..N.
type FetchedApp struct {
	AppStoreID    string
	BundleID      string
	Name          string
	ArtistName    string
	ArtworkURL100 string
	ArtworkURL512 string
	Summary       string
	CategoryID    string
	CategoryName  string
	Price         float64
	Currency      string
	ReleaseDate   string // ISO 8601
	Rank          int
}

// FeedEnvelope cobre os dois formatos conhecidos do feed de rankings da Apple:
// o formato atual (marketingtools, array plano em "results") e o formato legado
// (itunes.apple.com/rss, lista "entry" com wrappers label/attributes).
type FeedEnvelope struct {
	Feed Feed `json:"feed"`
}

type Feed struct {
	Title   FeedLabel     `json:"title"`
	Country string        `json:"country"`
	Updated FeedLabel     `json:"updated"`
	Results []FeedApp     `json:"results"`
	Entry   []LegacyEntry `json:"entry"`
}

// FeedApp é uma entrada do formato plano.
type FeedApp struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	ArtistName    string      `json:"artistName"`
	ArtworkURL100 string      `json:"artworkUrl100"`
	ReleaseDate   string      `json:"releaseDate"`
	URL           string      `json:"url"`
	Genres        []FeedGenre `json:"genres"`
}

type FeedGenre struct {
	GenreID string `json:"genreId"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}

// FeedLabel aceita tanto uma string simples quanto o objeto {"label": ...} do
// formato legado.
type FeedLabel struct {
	Label string `json:"label"`
}

func (l *FeedLabel) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &l.Label)
	}
	var obj struct {
		Label string `json:"label"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	l.Label = obj.Label
	return nil
}

// LegacyEntry é uma entrada do formato legado, com cada campo embrulhado em
// objetos label/attributes.
type LegacyEntry struct {
	Name        FeedLabel          `json:"im:name"`
	Images      []LegacyImage      `json:"im:image"`
	Summary     FeedLabel          `json:"summary"`
	Price       LegacyPrice        `json:"im:price"`
	Title       FeedLabel          `json:"title"`
	Artist      FeedLabel          `json:"im:artist"`
	Category    LegacyCategory     `json:"category"`
	ReleaseDate *LegacyReleaseDate `json:"im:releaseDate"`
	ID          LegacyID           `json:"id"`
}

type LegacyImage struct {
	Label      string `json:"label"`
	Attributes struct {
		Height string `json:"height"`
	} `json:"attributes"`
}

type LegacyPrice struct {
	Label      string `json:"label"`
	Attributes struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	} `json:"attributes"`
}

type LegacyCategory struct {
	Attributes struct {
		ID    string `json:"im:id"`
		Term  string `json:"term"`
		Label string `json:"label"`
	} `json:"attributes"`
}

type LegacyReleaseDate struct {
	Label      string `json:"label"`
	Attributes struct {
		Label string `json:"label"`
	} `json:"attributes"`
}

type LegacyID struct {
	Label      string `json:"label"`
	Attributes struct {
		ID       string `json:"im:id"`
		BundleID string `json:"im:bundleId"`
	} `json:"attributes"`
}
