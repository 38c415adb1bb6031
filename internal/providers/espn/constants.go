package espn

import "time"

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "America/New_York"
)
