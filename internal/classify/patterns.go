package classify

import "regexp"

// Pattern rules run after the direct vocabulary and catch structured status
// fragments: quarter notation, overtime, a game clock, final phrasing and
// pre-game phrasing. First rule to match wins.
var patternRules = []struct {
	re         *regexp.Regexp
	normalized string
	category   Category
	reason     string
}{
	{regexp.MustCompile(`(?i)\bQ[1-4]\b`), statusLive, CategoryLive, "quarter notation"},
	{regexp.MustCompile(`(?i)\b[1-4](ST|ND|RD|TH)\s+QUARTER\b`), statusLive, CategoryLive, "quarter notation"},
	{regexp.MustCompile(`(?i)\b(OT|OVERTIME)\s*\d*\b`), statusLive, CategoryLive, "overtime notation"},
	{regexp.MustCompile(`(?i)(\b\d{1,2}:\d{2}\b|\bREMAINING\b|\bLEFT\b)`), statusLive, CategoryLive, "clock remaining"},
	{regexp.MustCompile(`(?i)\b(FINAL|ENDED|FINISHED)\b`), statusFinal, CategoryCompleted, "final phrasing"},
	{regexp.MustCompile(`(?i)\b(PRE|BEFORE|STARTS|BEGINS)\b`), statusPreGame, CategoryUpcoming, "pre-game phrasing"},
}

func classifyPattern(status string) (Classification, bool) {
	for _, rule := range patternRules {
		if rule.re.MatchString(status) {
			return newClassification(rule.normalized, rule.category, "pattern match: "+rule.reason), true
		}
	}
	return Classification{}, false
}
