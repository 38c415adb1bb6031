package classify

import "strings"

// Normalized status tokens. Each token carries a rank used to break ties when
// multiple status fields on a record disagree; higher wins.
const (
	statusLive       = "LIVE"
	statusInProgress = "IN_PROGRESS"
	statusHalftime   = "HALFTIME"
	statusActive     = "ACTIVE"
	statusPlaying    = "PLAYING"
	statusFinal      = "FINAL"
	statusCompleted  = "COMPLETED"
	statusFinished   = "FINISHED"
	statusPostponed  = "POSTPONED"
	statusDelayed    = "DELAYED"
	statusCancelled  = "CANCELLED"
	statusScheduled  = "SCHEDULED"
	statusPreGame    = "PRE_GAME"
	statusUpcoming   = "UPCOMING"
	statusNotStarted = "NOT_STARTED"
	statusTBD        = "TBD"
)

var statusPriorities = map[string]int{
	statusLive:       100,
	statusInProgress: 95,
	statusHalftime:   90,
	statusActive:     85,
	statusPlaying:    80,
	statusFinal:      75,
	statusCompleted:  70,
	statusFinished:   65,
	statusPostponed:  60,
	statusDelayed:    55,
	statusCancelled:  50,
	statusScheduled:  45,
	statusPreGame:    40,
	statusUpcoming:   35,
	statusNotStarted: 30,
	statusTBD:        25,
}

func priorityOf(normalized string) int {
	return statusPriorities[normalized]
}

type vocabEntry struct {
	normalized string
	category   Category
}

// directVocab is the closed enumeration of known status synonyms, keyed by
// the uppercased raw value.
var directVocab = map[string]vocabEntry{
	// live
	"LIVE":               {statusLive, CategoryLive},
	"IN PROGRESS":        {statusInProgress, CategoryLive},
	"IN_PROGRESS":        {statusInProgress, CategoryLive},
	"INPROGRESS":         {statusInProgress, CategoryLive},
	"HALFTIME":           {statusHalftime, CategoryLive},
	"HALF TIME":          {statusHalftime, CategoryLive},
	"ACTIVE":             {statusActive, CategoryLive},
	"PLAYING":            {statusPlaying, CategoryLive},
	"Q1":                 {statusLive, CategoryLive},
	"Q2":                 {statusLive, CategoryLive},
	"Q3":                 {statusLive, CategoryLive},
	"Q4":                 {statusLive, CategoryLive},
	"OT":                 {statusLive, CategoryLive},
	"OVERTIME":           {statusLive, CategoryLive},
	"TWO MINUTE WARNING": {statusLive, CategoryLive},
	"END OF QUARTER":     {statusLive, CategoryLive},
	"END OF PERIOD":      {statusLive, CategoryLive},
	"STATUS_IN_PROGRESS": {statusInProgress, CategoryLive},
	"STATUS_HALFTIME":    {statusHalftime, CategoryLive},
	"STATUS_END_PERIOD":  {statusLive, CategoryLive},

	// completed
	"FINAL":        {statusFinal, CategoryCompleted},
	"FINAL SCORE":  {statusFinal, CategoryCompleted},
	"FINAL/OT":     {statusFinal, CategoryCompleted},
	"FINAL OT":     {statusFinal, CategoryCompleted},
	"COMPLETED":    {statusCompleted, CategoryCompleted},
	"COMPLETE":     {statusCompleted, CategoryCompleted},
	"FINISHED":     {statusFinished, CategoryCompleted},
	"ENDED":        {statusFinal, CategoryCompleted},
	"FULL TIME":    {statusFinal, CategoryCompleted},
	"GAME OVER":    {statusFinal, CategoryCompleted},
	"STATUS_FINAL": {statusFinal, CategoryCompleted},

	// postponed
	"POSTPONED":        {statusPostponed, CategoryPostponed},
	"DELAYED":          {statusDelayed, CategoryPostponed},
	"DELAY":            {statusDelayed, CategoryPostponed},
	"SUSPENDED":        {statusPostponed, CategoryPostponed},
	"CANCELLED":        {statusCancelled, CategoryPostponed},
	"CANCELED":         {statusCancelled, CategoryPostponed},
	"STATUS_POSTPONED": {statusPostponed, CategoryPostponed},
	"STATUS_CANCELED":  {statusCancelled, CategoryPostponed},

	// upcoming
	"SCHEDULED":        {statusScheduled, CategoryUpcoming},
	"UPCOMING":         {statusUpcoming, CategoryUpcoming},
	"PRE-GAME":         {statusPreGame, CategoryUpcoming},
	"PREGAME":          {statusPreGame, CategoryUpcoming},
	"PRE GAME":         {statusPreGame, CategoryUpcoming},
	"NOT STARTED":      {statusNotStarted, CategoryUpcoming},
	"NOT_STARTED":      {statusNotStarted, CategoryUpcoming},
	"NS":               {statusNotStarted, CategoryUpcoming},
	"TBD":              {statusTBD, CategoryUpcoming},
	"TIME TBD":         {statusTBD, CategoryUpcoming},
	"STATUS_SCHEDULED": {statusScheduled, CategoryUpcoming},
}

// classifyDirect tests exact case-insensitive membership in the vocabulary.
func classifyDirect(status string) (Classification, bool) {
	key := strings.ToUpper(strings.TrimSpace(status))
	entry, ok := directVocab[key]
	if !ok {
		return Classification{}, false
	}
	return newClassification(entry.normalized, entry.category, "direct vocabulary match"), true
}

// Keyword sets checked by substring containment, in priority order: a status
// mentioning both "live" and "scheduled" words counts as live.
var keywordSets = []struct {
	normalized string
	category   Category
	words      []string
}{
	{statusLive, CategoryLive, []string{"LIVE", "PROGRESS", "PLAYING", "ACTIVE", "HALFTIME", "QUARTER", "QTR"}},
	{statusFinal, CategoryCompleted, []string{"FINAL", "ENDED", "FINISHED", "COMPLETE", "OVER"}},
	{statusPostponed, CategoryPostponed, []string{"POSTPON", "DELAY", "CANCEL", "SUSPEND"}},
	{statusScheduled, CategoryUpcoming, []string{"SCHEDUL", "UPCOMING", "PRE", "TBD", "PENDING"}},
}

func classifyKeyword(status string) (Classification, bool) {
	upper := strings.ToUpper(status)
	for _, set := range keywordSets {
		for _, word := range set.words {
			if strings.Contains(upper, word) {
				return newClassification(set.normalized, set.category, "keyword match: "+strings.ToLower(word)), true
			}
		}
	}
	return Classification{}, false
}
