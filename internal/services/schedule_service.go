package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"gabojago/internal/models/db_models"
	"gabojago/internal/models/request_models"
	"gabojago/internal/models/response_models"
	"gabojago/internal/repositories"
	"gabojago/pkg/utils"
)

type ScheduleServiceInterface interface {
	AppendSchedule(ctx context.Context, req request_models.AppendScheduleRequest) (*response_models.ScheduleResponse, error)
	ModifySchedule(ctx context.Context, req request_models.ModifyScheduleRequest) error
	RemoveSchedule(ctx context.Context, scheduleID string) error
	ListSchedules(ctx context.Context, userID string, status string) ([]response_models.ScheduleResponse, error)
	ListScheduleLocations(ctx context.Context, scheduleID string) (*response_models.ScheduleLocationListResponse, error)
	AppendScheduleLocation(ctx context.Context, req request_models.AppendScheduleLocationRequest) error
	ModifyScheduleLocation(ctx context.Context, req request_models.ModifyScheduleLocationRequest) error
	RemoveScheduleLocation(ctx context.Context, entryID string) error
	ListScheduleUsers(ctx context.Context, scheduleID string) ([]response_models.ScheduleUserResponse, error)
}

type ScheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	entryRepo    repositories.ScheduleLocationRepository
}

func NewScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	entryRepo repositories.ScheduleLocationRepository,
) ScheduleServiceInterface {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		entryRepo:    entryRepo,
	}
}

func (s *ScheduleService) AppendSchedule(ctx context.Context, req request_models.AppendScheduleRequest) (*response_models.ScheduleResponse, error) {
	startDate, err := time.Parse(utils.DateOnlyLayout, req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endDate, err := time.Parse(utils.DateOnlyLayout, req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	status := req.Status
	if status == "" {
		status = "A"
	}
	title := req.Title
	if title == "" {
		title = req.Destination + " 여행"
	}

	schedule := &db_models.Schedule{
		UserID:         userID,
		Title:          title,
		Destination:    req.Destination,
		StartDate:      startDate,
		EndDate:        endDate,
		WithWho:        req.WithWho,
		Transport:      req.Transport,
		Styles:         req.Styles,
		TotalPeople:    req.TotalPeople,
		TotalBudget:    req.TotalBudget,
		AlarmRatio:     req.AlarmRatio,
		TransportRatio: req.TransportRatio,
		LodgingRatio:   req.LodgingRatio,
		FoodRatio:      req.FoodRatio,
		Status:         status,
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		log.Printf("Error creating schedule: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := buildScheduleResponse(schedule)
	return &out, nil
}

func (s *ScheduleService) ModifySchedule(ctx context.Context, req request_models.ModifyScheduleRequest) error {
	schedule, err := s.scheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if schedule == nil {
		return utils.ErrScheduleNotFound
	}

	if req.Title != "" {
		schedule.Title = req.Title
	}
	if req.Destination != "" {
		schedule.Destination = req.Destination
	}
	if req.StartDate != "" {
		startDate, err := time.Parse(utils.DateOnlyLayout, req.StartDate)
		if err != nil {
			return utils.ErrInvalidInput
		}
		schedule.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := time.Parse(utils.DateOnlyLayout, req.EndDate)
		if err != nil {
			return utils.ErrInvalidInput
		}
		schedule.EndDate = endDate
	}
	if req.TotalBudget > 0 {
		schedule.TotalBudget = req.TotalBudget
	}
	if req.Status != "" {
		schedule.Status = req.Status
	}

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		log.Printf("Error updating schedule: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ScheduleService) RemoveSchedule(ctx context.Context, scheduleID string) error {
	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if schedule == nil {
		return utils.ErrScheduleNotFound
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting schedule: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ScheduleService) ListSchedules(ctx context.Context, userID string, status string) ([]response_models.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.ListByUserAndStatus(ctx, userID, status)
	if err != nil {
		log.Printf("Error listing schedules: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		out = append(out, buildScheduleResponse(&schedules[i]))
	}
	return out, nil
}

// ListScheduleLocations groups the persisted pins of one schedule into trip
// days. The bucket for each pin comes from the calendar-date part of its
// canonical timestamp; out-of-window dates clamp into the first or last day
// rather than vanishing.
func (s *ScheduleService) ListScheduleLocations(ctx context.Context, scheduleID string) (*response_models.ScheduleLocationListResponse, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if schedule == nil {
		return nil, utils.ErrScheduleNotFound
	}

	entries, err := s.entryRepo.ListByScheduleID(ctx, scheduleID)
	if err != nil {
		log.Printf("Error listing schedule locations: %v", err)
		return nil, utils.ErrDatabaseError
	}

	dayCount := utils.TripDayCount(schedule.StartDate, schedule.EndDate)
	days := make([]response_models.ScheduleLocationDay, dayCount)
	for i := range days {
		days[i] = response_models.ScheduleLocationDay{
			Day:       i + 1,
			Date:      schedule.StartDate.AddDate(0, 0, i).Format(utils.DateOnlyLayout),
			Locations: []response_models.ScheduleLocationEntry{},
		}
	}

	for _, entry := range entries {
		entryDate, err := time.Parse(utils.DateOnlyLayout, datePart(entry.ScheduleTime))
		if err != nil {
			entryDate = time.Time{}
		}
		idx := utils.ResolveDayIndex(entryDate, schedule.StartDate, dayCount)

		days[idx].Locations = append(days[idx].Locations, response_models.ScheduleLocationEntry{
			ID:           entry.ID.String(),
			ScheduleTime: entry.ScheduleTime,
			Memo:         entry.Memo,
			Location: response_models.CandidateLocation{
				ID:        entry.Location.ID.String(),
				Name:      entry.Location.Name,
				Address:   entry.Location.Address,
				Latitude:  entry.Location.Latitude,
				Longitude: entry.Location.Longitude,
			},
		})
	}

	return &response_models.ScheduleLocationListResponse{
		ScheduleID: schedule.ID.String(),
		DayCount:   dayCount,
		Days:       days,
	}, nil
}

func (s *ScheduleService) AppendScheduleLocation(ctx context.Context, req request_models.AppendScheduleLocationRequest) error {
	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	entry := &db_models.ScheduleLocation{
		ScheduleID:   scheduleID,
		LocationID:   locationID,
		ScheduleTime: req.ScheduleTime,
		Memo:         req.Memo,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		log.Printf("Error appending schedule location: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ScheduleService) ModifyScheduleLocation(ctx context.Context, req request_models.ModifyScheduleLocationRequest) error {
	entry, err := s.entryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if entry == nil {
		return utils.ErrLocationNotFound
	}

	if req.LocationID != "" {
		locationID, err := uuid.Parse(req.LocationID)
		if err != nil {
			return utils.ErrInvalidInput
		}
		entry.LocationID = locationID
	}
	if req.ScheduleTime != "" {
		entry.ScheduleTime = req.ScheduleTime
	}
	entry.Memo = req.Memo

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		log.Printf("Error modifying schedule location: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ScheduleService) RemoveScheduleLocation(ctx context.Context, entryID string) error {
	id, err := uuid.Parse(entryID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if entry == nil {
		return utils.ErrLocationNotFound
	}

	if err := s.entryRepo.Delete(ctx, id); err != nil {
		log.Printf("Error removing schedule location: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ScheduleService) ListScheduleUsers(ctx context.Context, scheduleID string) ([]response_models.ScheduleUserResponse, error) {
	members, err := s.scheduleRepo.ListMembers(ctx, scheduleID)
	if err != nil {
		log.Printf("Error listing schedule members: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ScheduleUserResponse, 0, len(members))
	for _, member := range members {
		out = append(out, response_models.ScheduleUserResponse{
			ID:    member.ID.String(),
			Name:  member.Account.Name,
			Email: member.Account.Email,
			Role:  member.Role,
		})
	}
	return out, nil
}

func buildScheduleResponse(schedule *db_models.Schedule) response_models.ScheduleResponse {
	return response_models.ScheduleResponse{
		ID:             schedule.ID.String(),
		Title:          schedule.Title,
		Destination:    schedule.Destination,
		StartDate:      schedule.StartDate.Format(utils.DateOnlyLayout),
		EndDate:        schedule.EndDate.Format(utils.DateOnlyLayout),
		WithWho:        schedule.WithWho,
		Transport:      schedule.Transport,
		Styles:         schedule.Styles,
		TotalPeople:    schedule.TotalPeople,
		TotalBudget:    schedule.TotalBudget,
		AlarmRatio:     schedule.AlarmRatio,
		TransportRatio: schedule.TransportRatio,
		LodgingRatio:   schedule.LodgingRatio,
		FoodRatio:      schedule.FoodRatio,
		Status:         schedule.Status,
	}
}

func datePart(scheduleTime string) string {
	if len(scheduleTime) >= 10 {
		return scheduleTime[:10]
	}
	return scheduleTime
}
