package models

// GameRow is the raw shape of a catalog row at the store boundary
// (snake_case, as stored in Postgres).
type GameRow struct {
	ID              string   `gorm:"column:id"`
	Title           string   `gorm:"column:title"`
	Platform        string   `gorm:"column:platform"`
	Region          string   `gorm:"column:region"`
	Country         string   `gorm:"column:country"`
	ProductType     string   `gorm:"column:product_type"`
	OperatingSystem string   `gorm:"column:operating_system"`
	Genre           string   `gorm:"column:genre"`
	ImageURL        string   `gorm:"column:image_url"`
	PriceEur        float64  `gorm:"column:price_eur"`
	OldPriceEur     *float64 `gorm:"column:old_price_eur"`
	DiscountPercent *int     `gorm:"column:discount_percent"`
	CashbackEur     *float64 `gorm:"column:cashback_eur"`
	Likes           int      `gorm:"column:likes"`
}

// Game is the customer-facing catalog item (camelCase API shape).
// Optional fields serialize as null when absent, never as a sentinel value.
type Game struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Platform        string   `json:"platform"`
	Region          string   `json:"region"`
	Country         string   `json:"country"`
	ProductType     string   `json:"productType"`
	OperatingSystem string   `json:"operatingSystem"`
	Genre           string   `json:"genre"`
	ImageURL        string   `json:"imageUrl"`
	PriceEur        float64  `json:"priceEur"`
	OldPriceEur     *float64 `json:"oldPriceEur"`
	DiscountPercent *int     `json:"discountPercent"`
	CashbackEur     *float64 `json:"cashbackEur"`
	Likes           int      `json:"likes"`
}

// MapRowToGame renames store columns to the API shape. Optional fields
// propagate as nil rather than zero values.
func MapRowToGame(row GameRow) Game {
	return Game{
		ID:              row.ID,
		Title:           row.Title,
		Platform:        row.Platform,
		Region:          row.Region,
		Country:         row.Country,
		ProductType:     row.ProductType,
		OperatingSystem: row.OperatingSystem,
		Genre:           row.Genre,
		ImageURL:        row.ImageURL,
		PriceEur:        row.PriceEur,
		OldPriceEur:     row.OldPriceEur,
		DiscountPercent: row.DiscountPercent,
		CashbackEur:     row.CashbackEur,
		Likes:           row.Likes,
	}
}

// MapRowsToGames maps a result set, preserving order.
func MapRowsToGames(rows []GameRow) []Game {
	games := make([]Game, 0, len(rows))
	for _, row := range rows {
		games = append(games, MapRowToGame(row))
	}
	return games
}

// SortOption is the storefront sort mode.
type SortOption string

const (
	SortPopularity SortOption = "popularity"
	SortPriceAsc   SortOption = "price_asc"
	SortPriceDesc  SortOption = "price_desc"
	SortDiscount   SortOption = "discount"
)

// ParseSortOption coerces unrecognized values to the popularity default.
func ParseSortOption(value string) SortOption {
	switch SortOption(value) {
	case SortPriceAsc, SortPriceDesc, SortDiscount:
		return SortOption(value)
	default:
		return SortPopularity
	}
}
