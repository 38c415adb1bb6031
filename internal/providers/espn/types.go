package espn

const providerName = "espn"

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Name         string                `json:"name"`
	ShortName    string                `json:"shortName"`
	Status       statusResponse        `json:"status"`
	Competitions []competitionResponse `json:"competitions"`
}

type statusResponse struct {
	Clock        float64            `json:"clock"`
	DisplayClock string             `json:"displayClock"`
	Period       int                `json:"period"`
	Type         statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	Name        string `json:"name"`
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	ShortDetail string `json:"shortDetail"`
}

type competitionResponse struct {
	ID          string               `json:"id"`
	Date        string               `json:"date"`
	Venue       venueResponse        `json:"venue"`
	Competitors []competitorResponse `json:"competitors"`
	Broadcasts  []broadcastResponse  `json:"broadcasts"`
}

type venueResponse struct {
	FullName string `json:"fullName"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Score    string       `json:"score"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	ID           string `json:"id"`
	Location     string `json:"location"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

type broadcastResponse struct {
	Names []string `json:"names"`
}
