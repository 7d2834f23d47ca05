package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"gabojago/internal/models/db_models"
	"gabojago/internal/models/request_models"
	"gabojago/internal/models/response_models"
	"gabojago/internal/repositories"
	"gabojago/pkg/utils"
)

// GenerationStage names one step of the generate -> search -> reconcile ->
// persist pipeline, so a failure can say which step died instead of a flat
// "generation failed".
type GenerationStage string

const (
	StageGenerating  GenerationStage = "generating"
	StageSearching   GenerationStage = "searching"
	StageReconciling GenerationStage = "reconciling"
	StagePersisting  GenerationStage = "persisting"
)

type StageError struct {
	Stage GenerationStage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateScheduleRequest) (*response_models.GeneratedItinerary, error)
	PersistItinerary(ctx context.Context, scheduleID string, itinerary *response_models.GeneratedItinerary) (int, error)
}

type ItineraryService struct {
	generator    utils.ScheduleGeneratorInterface
	locations    LocationServiceInterface
	reconciler   ReconcileServiceInterface
	locationRepo repositories.ScheduleLocationRepository
}

func NewItineraryService(
	generator utils.ScheduleGeneratorInterface,
	locations LocationServiceInterface,
	reconciler ReconcileServiceInterface,
	locationRepo repositories.ScheduleLocationRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		generator:    generator,
		locations:    locations,
		reconciler:   reconciler,
		locationRepo: locationRepo,
	}
}

// GenerateItinerary runs the generating, searching and reconciling stages
// and returns the fully resolved day-by-day itinerary. Unmatched places are
// carried in the result, never dropped. An upstream failure aborts with a
// StageError naming the stage.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateScheduleRequest) (*response_models.GeneratedItinerary, error) {
	startDate, err := time.Parse(utils.DateOnlyLayout, req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endDate, err := time.Parse(utils.DateOnlyLayout, req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	startTime := time.Now()

	schedule, err := s.generator.GenerateSchedule(ctx, req)
	if err != nil {
		return nil, &StageError{Stage: StageGenerating, Err: err}
	}
	log.Printf("ts: %s - schedule generated, %d day(s)", time.Since(startTime), len(schedule.DaySchedules))

	queries := collectPlaceQueries(schedule)

	var pool []response_models.CandidateLocation
	if len(queries) > 0 {
		pool, err = s.locations.RequestLocations(ctx, queries)
		if err != nil {
			return nil, &StageError{Stage: StageSearching, Err: err}
		}
		log.Printf("ts: %s - place search returned %d candidate(s) for %d name(s)", time.Since(startTime), len(pool), len(queries))
	}

	days := make([][]response_models.RawActivity, 0, len(schedule.DaySchedules))
	for _, day := range schedule.DaySchedules {
		days = append(days, day.Activities)
	}

	trip := TripWindow{
		Start:    startDate,
		DayCount: utils.TripDayCount(startDate, endDate),
	}
	result := s.reconciler.Reconcile(days, pool, trip, utils.RegionPrefix(req.Destination))
	log.Printf("ts: %s - reconciled %d day(s), %d unmatched", time.Since(startTime), len(result.Days), len(result.Unmatched))

	return &response_models.GeneratedItinerary{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        result.Days,
		Unmatched:   result.Unmatched,
	}, nil
}

// PersistItinerary saves one schedule_locations row per resolved activity
// with a pin. A single failed row is logged and skipped; the remaining rows
// are still attempted, and nothing already saved is rolled back. Returns the
// number of rows saved.
func (s *ItineraryService) PersistItinerary(ctx context.Context, scheduleID string, itinerary *response_models.GeneratedItinerary) (int, error) {
	scheduleUUID, err := uuid.Parse(scheduleID)
	if err != nil {
		return 0, utils.ErrInvalidInput
	}

	saved := 0
	for _, day := range itinerary.Days {
		for _, act := range day.Activities {
			if act.Location == nil {
				continue
			}
			locationUUID, err := uuid.Parse(act.Location.ID)
			if err != nil {
				log.Printf("persisting stage: bad location id %q for %q: %v", act.Location.ID, act.PlaceName, err)
				continue
			}

			memo := act.Memo
			if memo == "" {
				memo = "방문"
			}

			entry := &db_models.ScheduleLocation{
				ScheduleID:   scheduleUUID,
				LocationID:   locationUUID,
				ScheduleTime: act.ScheduleTime,
				Memo:         memo,
			}
			if err := s.locationRepo.Create(ctx, entry); err != nil {
				log.Printf("persisting stage: failed to save %q at %s: %v", act.PlaceName, act.ScheduleTime, err)
				continue
			}
			saved++
		}
	}

	return saved, nil
}

func collectPlaceQueries(schedule *response_models.AISchedule) []request_models.PlaceQuery {
	var queries []request_models.PlaceQuery
	for _, day := range schedule.DaySchedules {
		for _, act := range day.Activities {
			name := utils.NormalizePlaceName(act.PlaceName)
			if name == "" {
				continue
			}
			queries = append(queries, request_models.PlaceQuery{
				PlaceName:         name,
				CategoryGroupCode: act.CategoryGroupCode,
			})
		}
	}
	return queries
}
