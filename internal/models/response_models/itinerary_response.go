package response_models

import "strings"

// Kakao category group codes the generator is allowed to emit. Empty means
// "search without a category filter".
var kakaoCategoryCodes = map[string]struct{}{
	"MT1": {}, "CS2": {}, "PS3": {}, "SC4": {}, "AC5": {}, "PK6": {},
	"OL7": {}, "SW8": {}, "BK9": {}, "CT1": {}, "AG2": {}, "PO3": {},
	"AT4": {}, "AD5": {}, "FD6": {}, "CE7": {}, "HP8": {}, "PM9": {},
}

// RawActivity is one AI-suggested stop, exactly as the generator emitted it.
// PlaceName usually still carries the region qualifier the prompt asks for.
type RawActivity struct {
	PlaceName         string `json:"place_name"`
	CategoryGroupCode string `json:"category_group_code"`
	ScheduleTime      string `json:"dtSchedule"`
	Memo              string `json:"strMemo"`
}

type AIDaySchedule struct {
	Day        int           `json:"day"`
	Activities []RawActivity `json:"activities"`
}

// AISchedule is the generator's response after the boundary validation pass.
type AISchedule struct {
	DaySchedules []AIDaySchedule `json:"day_schedules"`
}

// Normalize is the single validation pass over the loosely structured AI
// output. After it runs, downstream code can index fields without fallback
// chains: names are trimmed, unknown category codes are cleared, activity
// slices are never nil.
func (s *AISchedule) Normalize() {
	for i := range s.DaySchedules {
		day := &s.DaySchedules[i]
		if day.Day == 0 {
			day.Day = i + 1
		}
		if day.Activities == nil {
			day.Activities = []RawActivity{}
		}
		for j := range day.Activities {
			act := &day.Activities[j]
			act.PlaceName = strings.TrimSpace(act.PlaceName)
			act.ScheduleTime = strings.TrimSpace(act.ScheduleTime)
			act.Memo = strings.TrimSpace(act.Memo)
			act.CategoryGroupCode = strings.ToUpper(strings.TrimSpace(act.CategoryGroupCode))
			if _, ok := kakaoCategoryCodes[act.CategoryGroupCode]; !ok {
				act.CategoryGroupCode = ""
			}
		}
	}
}

// ResolvedActivity carries every RawActivity field plus the reconciled
// location and timestamp. A nil Location means "no map pin", never "dropped".
type ResolvedActivity struct {
	PlaceName         string             `json:"place_name"`
	CategoryGroupCode string             `json:"category_group_code,omitempty"`
	Memo              string             `json:"strMemo,omitempty"`
	ScheduleTime      string             `json:"dtSchedule"`
	Location          *CandidateLocation `json:"kakao_location"`
}

type ItineraryDay struct {
	Day        int                `json:"day"`
	Date       string             `json:"date"`
	Activities []ResolvedActivity `json:"activities"`
}

// UnmatchedPlace reports one activity the matcher could not resolve, with
// the size of the region-filtered candidate set for diagnosis.
type UnmatchedPlace struct {
	SearchName       string `json:"search_name"`
	RegionCandidates int    `json:"region_candidates"`
}

type GeneratedItinerary struct {
	Destination string           `json:"strWhere"`
	StartDate   string           `json:"dtDate1"`
	EndDate     string           `json:"dtDate2"`
	Days        []ItineraryDay   `json:"day_schedules"`
	Unmatched   []UnmatchedPlace `json:"unmatched,omitempty"`
}
