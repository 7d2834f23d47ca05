package services

import (
	"context"
	"log"

	"gabojago/internal/models/db_models"
	"gabojago/internal/models/request_models"
	"gabojago/internal/models/response_models"
	"gabojago/internal/repositories"
	"gabojago/pkg/utils"
)

type LocationServiceInterface interface {
	RequestLocations(ctx context.Context, requestList []request_models.PlaceQuery) ([]response_models.CandidateLocation, error)
}

type LocationService struct {
	search       PlaceSearchInterface
	locationRepo repositories.LocationRepository
}

func NewLocationService(search PlaceSearchInterface, locationRepo repositories.LocationRepository) LocationServiceInterface {
	return &LocationService{
		search:       search,
		locationRepo: locationRepo,
	}
}

// RequestLocations resolves each name/category pair against Kakao, persists
// every hit (deduplicated by Kakao place id) and returns the combined
// candidate list. One failed search degrades to zero candidates for that
// name; only a transport-level failure on the whole batch is an error.
func (l *LocationService) RequestLocations(ctx context.Context, requestList []request_models.PlaceQuery) ([]response_models.CandidateLocation, error) {
	if len(requestList) == 0 {
		return []response_models.CandidateLocation{}, nil
	}

	seen := make(map[string]bool)
	candidates := make([]response_models.CandidateLocation, 0, len(requestList))

	for _, query := range requestList {
		places, err := l.search.SearchPlace(ctx, query)
		if err != nil {
			log.Printf("place search failed for %q: %v", query.PlaceName, err)
			return nil, utils.ErrPlaceSearchFailed
		}

		for _, place := range places {
			if place.PlaceID == "" || seen[place.PlaceID] {
				continue
			}
			seen[place.PlaceID] = true

			row := &db_models.Location{
				KakaoPlaceID:      place.PlaceID,
				Name:              place.Name,
				Address:           place.Address,
				RoadAddress:       place.RoadAddress,
				CategoryGroupCode: place.CategoryGroupCode,
				Phone:             place.Phone,
				Latitude:          place.Latitude,
				Longitude:         place.Longitude,
			}
			if err := l.locationRepo.UpsertByKakaoPlaceID(ctx, row); err != nil {
				log.Printf("Error upserting location %q: %v", place.Name, err)
				return nil, utils.ErrDatabaseError
			}

			candidates = append(candidates, response_models.CandidateLocation{
				ID:        row.ID.String(),
				Name:      row.Name,
				Address:   row.Address,
				Latitude:  row.Latitude,
				Longitude: row.Longitude,
			})
		}
	}

	return candidates, nil
}
