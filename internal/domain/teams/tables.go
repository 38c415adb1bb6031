package teams

import "strings"

// canonAliases maps historical names, relocations and common shorthand to the
// current franchise full name. Lookup keys are lowercase. Everything the
// directory itself implies (full name, mascot, abbreviation, unambiguous
// city) is added by init; this table covers only what the directory cannot.
var canonAliases = map[string]string{
	"washington football team": "Washington Commanders",
	"football team":            "Washington Commanders",
	"washington redskins":      "Washington Commanders",
	"redskins":                 "Washington Commanders",
	"oakland raiders":          "Las Vegas Raiders",
	"oakland":                  "Las Vegas Raiders",
	"san diego chargers":       "Los Angeles Chargers",
	"san diego":                "Los Angeles Chargers",
	"st. louis rams":           "Los Angeles Rams",
	"st louis rams":            "Los Angeles Rams",
	"la rams":                  "Los Angeles Rams",
	"la chargers":              "Los Angeles Chargers",
	"ny giants":                "New York Giants",
	"ny jets":                  "New York Jets",
	"jags":                     "Jacksonville Jaguars",
	"niners":                   "San Francisco 49ers",
	"pats":                     "New England Patriots",
	"bucs":                     "Tampa Bay Buccaneers",
	// Alternate short codes seen across feeds.
	"jac": "Jacksonville Jaguars",
	"oak": "Las Vegas Raiders",
	"sd":  "Los Angeles Chargers",
	"wsh": "Washington Commanders",
	"gnb": "Green Bay Packers",
	"sfo": "San Francisco 49ers",
	"nwe": "New England Patriots",
	"tam": "Tampa Bay Buccaneers",
}

var (
	aliasToCanonical map[string]string
	canonicalToTeam  map[string]Team
	cityList         []string
	mascotList       []string
)

func init() {
	aliasToCanonical = make(map[string]string, len(directory)*4+len(canonAliases))
	canonicalToTeam = make(map[string]Team, len(directory))

	// City-only aliases are ambiguous for shared markets, so they are skipped.
	cityCount := make(map[string]int)
	for _, t := range directory {
		cityCount[strings.ToLower(t.City)]++
	}

	seenCity := make(map[string]struct{})
	seenMascot := make(map[string]struct{})
	for _, t := range directory {
		canonical := t.FullName
		canonicalToTeam[strings.ToLower(canonical)] = t

		aliasToCanonical[strings.ToLower(t.FullName)] = canonical
		aliasToCanonical[strings.ToLower(t.Name)] = canonical
		aliasToCanonical[strings.ToLower(t.Abbreviation)] = canonical
		if cityCount[strings.ToLower(t.City)] == 1 {
			aliasToCanonical[strings.ToLower(t.City)] = canonical
		}

		city := strings.ToLower(t.City)
		if _, ok := seenCity[city]; !ok {
			seenCity[city] = struct{}{}
			cityList = append(cityList, city)
		}
		mascot := strings.ToLower(t.Name)
		if _, ok := seenMascot[mascot]; !ok {
			seenMascot[mascot] = struct{}{}
			mascotList = append(mascotList, mascot)
		}
	}

	for alias, canonical := range canonAliases {
		aliasToCanonical[alias] = canonical
	}
}

// CanonicalName maps any known alias of a franchise to its current full name.
// Unknown names are returned trimmed but otherwise unchanged.
func CanonicalName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := aliasToCanonical[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// Resolve looks a name up through the alias tables and returns the franchise.
func Resolve(name string) (Team, bool) {
	canonical := CanonicalName(name)
	t, ok := canonicalToTeam[strings.ToLower(canonical)]
	return t, ok
}

// Known reports whether the name maps to a current franchise.
func Known(name string) bool {
	_, ok := Resolve(name)
	return ok
}

// DerivedAbbreviation builds an abbreviation from a free-text name: the first
// letter of each word, or the first three letters for single-word names.
func DerivedAbbreviation(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	words := strings.Fields(trimmed)
	if len(words) == 1 {
		w := words[0]
		if len(w) > 3 {
			w = w[:3]
		}
		return strings.ToUpper(w)
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteByte(w[0])
	}
	return strings.ToUpper(b.String())
}

// SignificantKeywords returns the lowercase words of a name longer than two
// characters, the unit of comparison for keyword-overlap matching.
func SignificantKeywords(name string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(name)) {
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}

// SharedCity reports whether both names mention the same NFL city.
// Shared-market cities (New York, Los Angeles) make this deliberately
// imprecise; the matching layer accepts that tradeoff.
func SharedCity(a, b string) bool {
	return sharedEntry(a, b, cityList)
}

// SharedMascot reports whether both names mention the same mascot.
func SharedMascot(a, b string) bool {
	return sharedEntry(a, b, mascotList)
}

func sharedEntry(a, b string, entries []string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	for _, e := range entries {
		if strings.Contains(la, e) && strings.Contains(lb, e) {
			return true
		}
	}
	return false
}
