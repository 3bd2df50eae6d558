package domain

// Definições de países, tipos de ranking e categorias da App Store.
// A ordem dos slices *Codes/*IDs é a ordem determinística usada pelo sweep.

type CountryCode string

const (
	CountryJP CountryCode = "JP"
	CountryUS CountryCode = "US"
	CountryGB CountryCode = "GB"
	CountryCN CountryCode = "CN"
	CountryKR CountryCode = "KR"
)

type Country struct {
	Code      CountryCode `json:"code"`
	Name      string      `json:"name"`
	NameJa    string      `json:"nameJa"`
	Flag      string      `json:"flag"`
	AppleCode string      `json:"appleCode"`
}

var Countries = map[CountryCode]Country{
	CountryJP: {Code: CountryJP, Name: "Japan", NameJa: "日本", Flag: "🇯🇵", AppleCode: "jp"},
	CountryUS: {Code: CountryUS, Name: "United States", NameJa: "アメリカ", Flag: "🇺🇸", AppleCode: "us"},
	CountryGB: {Code: CountryGB, Name: "United Kingdom", NameJa: "イギリス", Flag: "🇬🇧", AppleCode: "gb"},
	CountryCN: {Code: CountryCN, Name: "China", NameJa: "中国", Flag: "🇨🇳", AppleCode: "cn"},
	CountryKR: {Code: CountryKR, Name: "South Korea", NameJa: "韓国", Flag: "🇰🇷", AppleCode: "kr"},
}

var CountryCodes = []CountryCode{CountryJP, CountryUS, CountryGB, CountryCN, CountryKR}

func ValidCountry(code CountryCode) bool {
	_, ok := Countries[code]
	return ok
}

type RankingType string

const (
	RankingTypeTopGrossing RankingType = "topgrossing"
	RankingTypeTopFree     RankingType = "topfree"
	RankingTypeTopPaid     RankingType = "toppaid"
)

type RankingTypeInfo struct {
	ID     RankingType `json:"id"`
	Name   string      `json:"name"`
	NameJa string      `json:"nameJa"`
}

var RankingTypes = map[RankingType]RankingTypeInfo{
	RankingTypeTopGrossing: {ID: RankingTypeTopGrossing, Name: "Top Grossing", NameJa: "トップセールス"},
	RankingTypeTopFree:     {ID: RankingTypeTopFree, Name: "Top Free", NameJa: "トップ無料DL"},
	RankingTypeTopPaid:     {ID: RankingTypeTopPaid, Name: "Top Paid", NameJa: "トップ有料DL"},
}

var RankingTypeIDs = []RankingType{RankingTypeTopGrossing, RankingTypeTopFree, RankingTypeTopPaid}

func ValidRankingType(rt RankingType) bool {
	_, ok := RankingTypes[rt]
	return ok
}

type CategoryType string

const (
	CategoryTypeAll   CategoryType = "all"
	CategoryTypeGames CategoryType = "games"
)

type CategoryTypeInfo struct {
	ID     CategoryType `json:"id"`
	Name   string       `json:"name"`
	NameJa string       `json:"nameJa"`
}

var CategoryTypes = map[CategoryType]CategoryTypeInfo{
	CategoryTypeAll:   {ID: CategoryTypeAll, Name: "All Categories", NameJa: "総合"},
	CategoryTypeGames: {ID: CategoryTypeGames, Name: "Games", NameJa: "ゲーム総合"},
}

func ValidCategoryType(ct CategoryType) bool {
	_, ok := CategoryTypes[ct]
	return ok
}

// AppCategory descreve uma categoria da App Store indexada pelo genreId da Apple.
type AppCategory struct {
	Name   string `json:"name"`
	NameJa string `json:"nameJa"`
	IsGame bool   `json:"isGame"`
}

var AppCategories = map[string]AppCategory{
	"6018": {Name: "Books", NameJa: "ブック"},
	"6000": {Name: "Business", NameJa: "ビジネス"},
	"6022": {Name: "Catalogs", NameJa: "カタログ"},
	"6017": {Name: "Education", NameJa: "教育"},
	"6016": {Name: "Entertainment", NameJa: "エンタメ"},
	"6015": {Name: "Finance", NameJa: "ファイナンス"},
	"6023": {Name: "Food & Drink", NameJa: "フード/ドリンク"},
	"6014": {Name: "Games", NameJa: "ゲーム", IsGame: true},
	"6013": {Name: "Health & Fitness", NameJa: "ヘルスケア/フィットネス"},
	"6012": {Name: "Lifestyle", NameJa: "ライフスタイル"},
	"6020": {Name: "Medical", NameJa: "メディカル"},
	"6011": {Name: "Music", NameJa: "ミュージック"},
	"6010": {Name: "Navigation", NameJa: "ナビゲーション"},
	"6009": {Name: "News", NameJa: "ニュース"},
	"6021": {Name: "Newsstand", NameJa: "Newsstand"},
	"6008": {Name: "Photo & Video", NameJa: "写真/ビデオ"},
	"6007": {Name: "Productivity", NameJa: "仕事効率化"},
	"6006": {Name: "Reference", NameJa: "辞書/辞典/その他"},
	"6024": {Name: "Shopping", NameJa: "ショッピング"},
	"6005": {Name: "Social Networking", NameJa: "SNS"},
	"6004": {Name: "Sports", NameJa: "スポーツ"},
	"6003": {Name: "Travel", NameJa: "旅行"},
	"6002": {Name: "Utilities", NameJa: "ユーティリティ"},
	"6001": {Name: "Weather", NameJa: "天気"},
	"7001": {Name: "Action", NameJa: "アクション", IsGame: true},
	"7002": {Name: "Adventure", NameJa: "アドベンチャー", IsGame: true},
	"7003": {Name: "Arcade", NameJa: "アーケード", IsGame: true},
	"7004": {Name: "Board", NameJa: "ボード", IsGame: true},
	"7005": {Name: "Card", NameJa: "カード", IsGame: true},
	"7006": {Name: "Casino", NameJa: "カジノ", IsGame: true},
	"7007": {Name: "Dice", NameJa: "サイコロ", IsGame: true},
	"7008": {Name: "Educational", NameJa: "教育", IsGame: true},
	"7009": {Name: "Family", NameJa: "ファミリー", IsGame: true},
	"7011": {Name: "Music", NameJa: "ミュージック", IsGame: true},
	"7012": {Name: "Puzzle", NameJa: "パズル", IsGame: true},
	"7013": {Name: "Racing", NameJa: "レーシング", IsGame: true},
	"7014": {Name: "Role Playing", NameJa: "ロールプレイング", IsGame: true},
	"7015": {Name: "Simulation", NameJa: "シミュレーション", IsGame: true},
	"7016": {Name: "Sports", NameJa: "スポーツ", IsGame: true},
	"7017": {Name: "Strategy", NameJa: "ストラテジー", IsGame: true},
	"7018": {Name: "Trivia", NameJa: "トリビア", IsGame: true},
	"7019": {Name: "Word", NameJa: "ワード", IsGame: true},
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
