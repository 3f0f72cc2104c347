package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/Shahadat99x/fullstack-game-search/config"
	"github.com/Shahadat99x/fullstack-game-search/store"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

const schemaSQL = `
CREATE EXTENSION IF NOT EXISTS pg_trgm;

CREATE TABLE IF NOT EXISTS games (
	id uuid PRIMARY KEY,
	title text NOT NULL,
	platform text NOT NULL,
	region text NOT NULL,
	country text NOT NULL DEFAULT '',
	product_type text NOT NULL DEFAULT 'Game',
	operating_system text NOT NULL DEFAULT 'Windows',
	genre text NOT NULL DEFAULT '',
	image_url text NOT NULL DEFAULT '',
	price_eur numeric(10,2) NOT NULL CHECK (price_eur >= 0),
	old_price_eur numeric(10,2) CHECK (old_price_eur >= 0),
	discount_percent int CHECK (discount_percent BETWEEN 0 AND 100),
	cashback_eur numeric(10,2) CHECK (cashback_eur >= 0),
	likes int NOT NULL DEFAULT 0 CHECK (likes >= 0)
);

CREATE INDEX IF NOT EXISTS idx_games_title_trgm ON games USING gin (title gin_trgm_ops);
CREATE INDEX IF NOT EXISTS idx_games_platform ON games (platform);
CREATE INDEX IF NOT EXISTS idx_games_region ON games (region);
`

// search_games is the fuzzy capability the resolver's primary path calls.
// It blends trigram similarity with the requested sort and reports the
// pre-cap total through a window count.
const fuzzyFunctionSQL = `
CREATE OR REPLACE FUNCTION search_games(
	search_term text,
	price_min numeric DEFAULT NULL,
	price_max numeric DEFAULT NULL,
	region_filter text DEFAULT NULL,
	platform_filter text[] DEFAULT NULL,
	sort_by text DEFAULT 'popularity',
	row_cap int DEFAULT 50
) RETURNS TABLE (
	id text,
	title text,
	platform text,
	region text,
	country text,
	product_type text,
	operating_system text,
	genre text,
	image_url text,
	price_eur numeric,
	old_price_eur numeric,
	discount_percent int,
	cashback_eur numeric,
	likes int,
	total_count bigint
) AS $$
BEGIN
	RETURN QUERY
	SELECT
		g.id::text,
		g.title,
		g.platform,
		g.region,
		g.country,
		g.product_type,
		g.operating_system,
		g.genre,
		g.image_url,
		g.price_eur,
		g.old_price_eur,
		g.discount_percent,
		g.cashback_eur,
		g.likes,
		COUNT(*) OVER ()::bigint
	FROM games g
	WHERE (g.title % search_term OR g.title ILIKE '%' || search_term || '%')
	  AND (price_min IS NULL OR g.price_eur >= price_min)
	  AND (price_max IS NULL OR g.price_eur <= price_max)
	  AND (region_filter IS NULL OR g.region = region_filter)
	  AND (platform_filter IS NULL OR g.platform = ANY(platform_filter))
	ORDER BY
		similarity(g.title, search_term) DESC,
		CASE WHEN sort_by = 'price_asc' THEN g.price_eur END ASC,
		CASE WHEN sort_by = 'price_desc' THEN g.price_eur END DESC,
		CASE WHEN sort_by = 'discount' THEN g.discount_percent END DESC NULLS LAST,
		CASE WHEN sort_by = 'popularity' THEN g.likes END DESC,
		g.title ASC
	LIMIT row_cap;
END;
$$ LANGUAGE plpgsql STABLE;
`

type seedGame struct {
	title           string
	platform        string
	region          string
	country         string
	productType     string
	operatingSystem string
	genre           string
	priceEur        float64
	oldPriceEur     *float64
	discountPercent *int
	cashbackEur     *float64
	likes           int
}

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

var seedGames = []seedGame{
	{"FIFA 23", "EA App", "GLOBAL", "United States", "Game", "Windows", "Sports", 19.99, f(59.99), i(67), f(1.20), 8421},
	{"EA SPORTS FC 24", "Steam", "EUROPE", "Germany", "Game", "Windows", "Sports", 34.99, f(69.99), i(50), nil, 5233},
	{"Grand Theft Auto V", "Rockstar", "GLOBAL", "United States", "Game", "Windows", "Action", 14.99, f(29.99), i(50), f(0.90), 12750},
	{"Red Dead Redemption 2", "Rockstar", "GLOBAL", "United States", "Game", "Windows", "Adventure", 24.99, f(59.99), i(58), nil, 9340},
	{"Call of Duty: Modern Warfare III", "Battle.net", "EUROPE", "United Kingdom", "Game", "Windows", "Shooter", 49.99, f(69.99), i(29), f(2.50), 6102},
	{"Counter-Strike 2 Prime Status", "Steam", "GLOBAL", "Poland", "DLC", "Windows", "Shooter", 13.49, nil, nil, nil, 11890},
	{"ELDEN RING", "Steam", "EUROPE", "France", "Game", "Windows", "RPG", 39.99, f(59.99), i(33), f(1.80), 10444},
	{"The Witcher 3: Wild Hunt", "GOG", "GLOBAL", "Poland", "Game", "Windows", "RPG", 9.99, f(29.99), i(67), nil, 14220},
	{"Cyberpunk 2077", "GOG", "GLOBAL", "Poland", "Game", "Windows", "RPG", 24.99, f(59.99), i(58), f(1.10), 8833},
	{"Forza Horizon 5", "Xbox Live", "EUROPE", "United Kingdom", "Game", "Windows", "Racing", 29.99, f(59.99), i(50), nil, 4310},
	{"God of War Ragnarök", "PlayStation Network", "EUROPE", "Spain", "Game", "Windows", "Action", 44.99, nil, nil, f(2.00), 7654},
	{"The Legend of Zelda: Breath of the Wild", "Nintendo eShop", "EUROPE", "Italy", "Game", "Windows", "Adventure", 49.99, nil, nil, nil, 9120},
	{"World of Warcraft: 60 Day Time Card", "Battle.net", "EUROPE", "Germany", "Software", "Windows", "RPG", 25.99, nil, nil, f(1.30), 3204},
	{"PUBG: Battlegrounds G-Coins", "Steam", "GLOBAL", "Lithuania", "DLC", "Windows", "Shooter", 8.49, f(9.99), i(15), nil, 2811},
	{"Need for Speed Unbound", "EA App", "GLOBAL", "France", "Game", "Windows", "Racing", 19.49, f(69.99), i(72), f(0.95), 3540},
	{"Assassin's Creed Mirage", "Ubisoft Connect", "EUROPE", "France", "Game", "Windows", "Action", 27.99, f(49.99), i(44), nil, 4988},
	{"Microsoft Flight Simulator 40th Anniversary", "Xbox Live", "GLOBAL", "United States", "Game", "Windows", "Simulation", 54.99, f(79.99), i(31), f(2.75), 2104},
	{"Stardew Valley", "GOG", "GLOBAL", "United States", "Game", "Linux", "Simulation", 11.99, nil, nil, nil, 6875},
}

// main provisions the games catalog: schema, fuzzy search function, and a
// demo data set.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("GAME SEARCH - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	db, pool, err := config.OpenDatabases()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	client := store.NewClient(db, pool)
	defer client.Close()

	if err := db.Exec(schemaSQL).Error; err != nil {
		log.Fatalf("❌ Failed to create schema: %v\nIf the pg_trgm extension is restricted, enable it in your database dashboard first.", err)
	}
	log.Println("✓ Schema ready (games table + indexes)")

	if err := db.Exec(fuzzyFunctionSQL).Error; err != nil {
		log.Fatalf("❌ Failed to create search_games function: %v", err)
	}
	log.Println("✓ search_games function installed")

	var existing int64
	if err := db.Raw("SELECT COUNT(*) FROM games").Scan(&existing).Error; err != nil {
		log.Fatalf("❌ Failed to count games: %v", err)
	}
	if existing > 0 {
		log.Printf("✓ Catalog already has %d games, skipping seed data", existing)
		return
	}

	const insertSQL = `
		INSERT INTO games (
			id, title, platform, region, country, product_type,
			operating_system, genre, image_url, price_eur, old_price_eur,
			discount_percent, cashback_eur, likes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, game := range seedGames {
		id := uuid.Must(uuid.NewV7())
		imageURL := fmt.Sprintf("https://images.example.com/games/%s.jpg", id)
		if err := db.Exec(insertSQL,
			id, game.title, game.platform, game.region, game.country,
			game.productType, game.operatingSystem, game.genre, imageURL,
			game.priceEur, game.oldPriceEur, game.discountPercent,
			game.cashbackEur, game.likes,
		).Error; err != nil {
			log.Fatalf("❌ Failed to seed %q: %v", game.title, err)
		}
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("✓ Seeded %d games. Catalog is ready.\n", len(seedGames))
	fmt.Println("════════════════════════════════════════════════════════════")
}
