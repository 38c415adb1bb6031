package teams

// Directory returns every current NFL franchise in a stable order.
// The matching tables in tables.go are derived from this list, so keeping it
// complete is what prevents false negatives in name reconciliation.
func Directory() []Team {
	out := make([]Team, len(directory))
	copy(out, directory)
	return out
}

var directory = []Team{
	{ID: "ari", Name: "Cardinals", FullName: "Arizona Cardinals", Abbreviation: "ARI", City: "Arizona", Conference: "NFC", Division: "West"},
	{ID: "atl", Name: "Falcons", FullName: "Atlanta Falcons", Abbreviation: "ATL", City: "Atlanta", Conference: "NFC", Division: "South"},
	{ID: "bal", Name: "Ravens", FullName: "Baltimore Ravens", Abbreviation: "BAL", City: "Baltimore", Conference: "AFC", Division: "North"},
	{ID: "buf", Name: "Bills", FullName: "Buffalo Bills", Abbreviation: "BUF", City: "Buffalo", Conference: "AFC", Division: "East"},
	{ID: "car", Name: "Panthers", FullName: "Carolina Panthers", Abbreviation: "CAR", City: "Carolina", Conference: "NFC", Division: "South"},
	{ID: "chi", Name: "Bears", FullName: "Chicago Bears", Abbreviation: "CHI", City: "Chicago", Conference: "NFC", Division: "North"},
	{ID: "cin", Name: "Bengals", FullName: "Cincinnati Bengals", Abbreviation: "CIN", City: "Cincinnati", Conference: "AFC", Division: "North"},
	{ID: "cle", Name: "Browns", FullName: "Cleveland Browns", Abbreviation: "CLE", City: "Cleveland", Conference: "AFC", Division: "North"},
	{ID: "dal", Name: "Cowboys", FullName: "Dallas Cowboys", Abbreviation: "DAL", City: "Dallas", Conference: "NFC", Division: "East"},
	{ID: "den", Name: "Broncos", FullName: "Denver Broncos", Abbreviation: "DEN", City: "Denver", Conference: "AFC", Division: "West"},
	{ID: "det", Name: "Lions", FullName: "Detroit Lions", Abbreviation: "DET", City: "Detroit", Conference: "NFC", Division: "North"},
	{ID: "gb", Name: "Packers", FullName: "Green Bay Packers", Abbreviation: "GB", City: "Green Bay", Conference: "NFC", Division: "North"},
	{ID: "hou", Name: "Texans", FullName: "Houston Texans", Abbreviation: "HOU", City: "Houston", Conference: "AFC", Division: "South"},
	{ID: "ind", Name: "Colts", FullName: "Indianapolis Colts", Abbreviation: "IND", City: "Indianapolis", Conference: "AFC", Division: "South"},
	{ID: "jax", Name: "Jaguars", FullName: "Jacksonville Jaguars", Abbreviation: "JAX", City: "Jacksonville", Conference: "AFC", Division: "South"},
	{ID: "kc", Name: "Chiefs", FullName: "Kansas City Chiefs", Abbreviation: "KC", City: "Kansas City", Conference: "AFC", Division: "West"},
	{ID: "lv", Name: "Raiders", FullName: "Las Vegas Raiders", Abbreviation: "LV", City: "Las Vegas", Conference: "AFC", Division: "West"},
	{ID: "lac", Name: "Chargers", FullName: "Los Angeles Chargers", Abbreviation: "LAC", City: "Los Angeles", Conference: "AFC", Division: "West"},
	{ID: "lar", Name: "Rams", FullName: "Los Angeles Rams", Abbreviation: "LAR", City: "Los Angeles", Conference: "NFC", Division: "West"},
	{ID: "mia", Name: "Dolphins", FullName: "Miami Dolphins", Abbreviation: "MIA", City: "Miami", Conference: "AFC", Division: "East"},
	{ID: "min", Name: "Vikings", FullName: "Minnesota Vikings", Abbreviation: "MIN", City: "Minnesota", Conference: "NFC", Division: "North"},
	{ID: "ne", Name: "Patriots", FullName: "New England Patriots", Abbreviation: "NE", City: "New England", Conference: "AFC", Division: "East"},
	{ID: "no", Name: "Saints", FullName: "New Orleans Saints", Abbreviation: "NO", City: "New Orleans", Conference: "NFC", Division: "South"},
	{ID: "nyg", Name: "Giants", FullName: "New York Giants", Abbreviation: "NYG", City: "New York", Conference: "NFC", Division: "East"},
	{ID: "nyj", Name: "Jets", FullName: "New York Jets", Abbreviation: "NYJ", City: "New York", Conference: "AFC", Division: "East"},
	{ID: "phi", Name: "Eagles", FullName: "Philadelphia Eagles", Abbreviation: "PHI", City: "Philadelphia", Conference: "NFC", Division: "East"},
	{ID: "pit", Name: "Steelers", FullName: "Pittsburgh Steelers", Abbreviation: "PIT", City: "Pittsburgh", Conference: "AFC", Division: "North"},
	{ID: "sf", Name: "49ers", FullName: "San Francisco 49ers", Abbreviation: "SF", City: "San Francisco", Conference: "NFC", Division: "West"},
	{ID: "sea", Name: "Seahawks", FullName: "Seattle Seahawks", Abbreviation: "SEA", City: "Seattle", Conference: "NFC", Division: "West"},
	{ID: "tb", Name: "Buccaneers", FullName: "Tampa Bay Buccaneers", Abbreviation: "TB", City: "Tampa Bay", Conference: "NFC", Division: "South"},
	{ID: "ten", Name: "Titans", FullName: "Tennessee Titans", Abbreviation: "TEN", City: "Tennessee", Conference: "AFC", Division: "South"},
	{ID: "was", Name: "Commanders", FullName: "Washington Commanders", Abbreviation: "WAS", City: "Washington", Conference: "NFC", Division: "East"},
}
