package models

// Known catalog attribute sets shown in the storefront filter sidebar.
var (
	Platforms = []string{
		"Steam",
		"EA App",
		"Xbox Live",
		"PlayStation Network",
		"Nintendo eShop",
		"Battle.net",
		"Ubisoft Connect",
		"GOG",
		"Rockstar",
	}

	Regions = []string{"GLOBAL", "EUROPE"}

	Countries = []string{
		"Lithuania",
		"Poland",
		"Germany",
		"France",
		"Spain",
		"Italy",
		"United Kingdom",
		"United States",
	}

	ProductTypes = []string{"Game", "DLC", "Software"}

	OperatingSystems = []string{"Windows", "Mac", "Linux"}

	Genres = []string{
		"Action",
		"RPG",
		"Sports",
		"Shooter",
		"Adventure",
		"Racing",
		"Simulation",
	}
)

// FilterMetadata represents all filter data for the storefront sidebar.
type FilterMetadata struct {
	Platforms  []FilterOption  `json:"platforms"`
	Regions    []FilterOption  `json:"regions"`
	PriceRange *PriceRangeData `json:"priceRange"`
}

// FilterOption is a single filter choice with its match count.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRangeData represents the minimum and maximum price in the store.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
