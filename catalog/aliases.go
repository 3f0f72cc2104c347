package catalog

import "strings"

// searchAliases maps common shorthands and misspellings to the canonical
// search phrase. Lookup keys are normalized (lower-case, single-spaced);
// substituted phrases keep their canonical casing. Static configuration,
// not logic.
var searchAliases = map[string]string{
	"cod":        "Call of Duty",
	"gta":        "Grand Theft Auto",
	"gta 5":      "Grand Theft Auto V",
	"rdr2":       "Red Dead Redemption 2",
	"wow":        "World of Warcraft",
	"pubg":       "PUBG: Battlegrounds",
	"cs":         "Counter-Strike",
	"csgo":       "Counter-Strike",
	"ac":         "Assassin's Creed",
	"nfs":        "Need for Speed",
	"fifa":       "FIFA",
	"tlou":       "The Last of Us",
	"botw":       "The Legend of Zelda: Breath of the Wild",
	"elden ring": "ELDEN RING",
}

// suggestionSuffixes extend a typed query into common refinements for the
// autocomplete dropdown.
var suggestionSuffixes = []string{
	"steam",
	"xbox",
	"playstation",
	"pc",
	"key",
	"global",
	"europe",
}

const maxQuerySuggestions = 4

// CanonicalAlias returns the canonical phrase for a normalized query, if the
// query matches an alias key exactly.
func CanonicalAlias(normalized string) (string, bool) {
	canonical, ok := searchAliases[strings.ToLower(normalized)]
	return canonical, ok
}

// QuerySuggestions builds refinement suggestions by appending suffixes the
// query does not already contain.
func QuerySuggestions(query string) []string {
	if len(query) < 2 {
		return nil
	}
	trimmed := strings.ToLower(strings.TrimSpace(query))

	suggestions := make([]string, 0, maxQuerySuggestions)
	for _, suffix := range suggestionSuffixes {
		if strings.Contains(trimmed, suffix) {
			continue
		}
		suggestions = append(suggestions, query+" "+suffix)
		if len(suggestions) == maxQuerySuggestions {
			break
		}
	}
	return suggestions
}
