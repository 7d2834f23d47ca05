package services

import (
	"log"
	"strings"
	"time"

	"gabojago/internal/models/response_models"
	"gabojago/pkg/utils"
)

// TripWindow bounds one reconciliation run: the trip's first day and the
// inclusive number of days. DayCount is never less than one.
type TripWindow struct {
	Start    time.Time
	DayCount int
}

type ReconcileResult struct {
	Days      []response_models.ItineraryDay
	Unmatched []response_models.UnmatchedPlace
}

type ReconcileServiceInterface interface {
	Reconcile(days [][]response_models.RawActivity,
		pool []response_models.CandidateLocation,
		trip TripWindow,
		targetRegion string) *ReconcileResult
}

type ReconcileService struct{}

func NewReconcileService() ReconcileServiceInterface {
	return &ReconcileService{}
}

// candidatePool is the per-run working set of not-yet-assigned candidates.
// It only ever shrinks; a candidate handed out once is gone for the rest of
// the run.
type candidatePool struct {
	available []response_models.CandidateLocation
}

func (p *candidatePool) removeByID(id string) {
	for i, c := range p.available {
		if c.ID == id {
			p.available = append(p.available[:i], p.available[i+1:]...)
			return
		}
	}
}

// Reconcile walks the AI itinerary in original order and enriches every
// activity with a matched candidate (or nil) and a canonical timestamp.
// The day/activity structure is preserved exactly: nothing is dropped,
// nothing is reordered. Given the same inputs and pool order the output is
// identical run to run.
func (s *ReconcileService) Reconcile(days [][]response_models.RawActivity,
	pool []response_models.CandidateLocation,
	trip TripWindow,
	targetRegion string) *ReconcileResult {

	if trip.DayCount < 1 {
		trip.DayCount = 1
	}
	if trip.Start.IsZero() {
		trip.Start = time.Now().UTC()
	}

	working := &candidatePool{
		available: append([]response_models.CandidateLocation(nil), pool...),
	}

	result := &ReconcileResult{
		Days: make([]response_models.ItineraryDay, 0, len(days)),
	}

	for d, activities := range days {
		dayDate := trip.Start.AddDate(0, 0, d).Format(utils.DateOnlyLayout)

		resolved := make([]response_models.ResolvedActivity, 0, len(activities))
		for ordinal, act := range activities {
			var location *response_models.CandidateLocation

			searchName := utils.NormalizePlaceName(act.PlaceName)
			if searchName != "" {
				matched, regionCount := s.matchCandidate(searchName, targetRegion, working)
				if matched == nil {
					log.Printf("place mapping failed: %q (region candidates: %d)", searchName, regionCount)
					result.Unmatched = append(result.Unmatched, response_models.UnmatchedPlace{
						SearchName:       searchName,
						RegionCandidates: regionCount,
					})
				}
				location = matched
			}

			resolved = append(resolved, response_models.ResolvedActivity{
				PlaceName:         act.PlaceName,
				CategoryGroupCode: act.CategoryGroupCode,
				Memo:              act.Memo,
				ScheduleTime:      utils.ResolveScheduleTime(act.ScheduleTime, dayDate, ordinal),
				Location:          location,
			})
		}

		result.Days = append(result.Days, response_models.ItineraryDay{
			Day:        d + 1,
			Date:       dayDate,
			Activities: resolved,
		})
	}

	return result
}

// matchCandidate picks the best remaining candidate for one search name and
// removes it from the pool. The second return value is the size of the
// region-filtered set, reported for diagnostics when nothing matched.
//
// Tiers, first hit wins, pool iteration order breaks ties:
//  1. candidates whose address contains the target region; when that leaves
//     nothing, the whole pool is used instead so a quirky address scheme
//     alone never fails a match
//  2. fold-equal name
//  3. either folded name contains the other
//  4. any significant search token contained in the folded candidate name
//  5. first element of the region-filtered set, if it was non-empty — the
//     single regionally plausible leftover is very likely the intended
//     place even when names do not line up (known to misassign when the
//     region filter is permissive; kept for compatibility)
func (s *ReconcileService) matchCandidate(searchName, targetRegion string, pool *candidatePool) (*response_models.CandidateLocation, int) {
	if searchName == "" {
		return nil, 0
	}
	folded := utils.FoldName(searchName)

	filtered := make([]response_models.CandidateLocation, 0, len(pool.available))
	for _, c := range pool.available {
		if strings.Contains(c.Address, targetRegion) {
			filtered = append(filtered, c)
		}
	}
	regionCount := len(filtered)
	if regionCount == 0 {
		filtered = append(filtered, pool.available...)
	}

	matchIdx := -1
	for i, c := range filtered {
		if utils.FoldName(c.Name) == folded {
			matchIdx = i
			break
		}
	}

	if matchIdx == -1 {
		for i, c := range filtered {
			fc := utils.FoldName(c.Name)
			if strings.Contains(fc, folded) || strings.Contains(folded, fc) {
				matchIdx = i
				break
			}
		}
	}

	if matchIdx == -1 {
		tokens := utils.MatchTokens(searchName)
	tokenSearch:
		for i, c := range filtered {
			fc := utils.FoldName(c.Name)
			for _, token := range tokens {
				if strings.Contains(fc, utils.FoldName(token)) {
					matchIdx = i
					break tokenSearch
				}
			}
		}
	}

	if matchIdx == -1 && regionCount > 0 {
		matchIdx = 0
	}

	if matchIdx == -1 {
		return nil, regionCount
	}

	matched := filtered[matchIdx]
	pool.removeByID(matched.ID)
	return &matched, regionCount
}
