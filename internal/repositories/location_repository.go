package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gabojago/internal/models/db_models"
)

type LocationRepository interface {
	UpsertByKakaoPlaceID(ctx context.Context, location *db_models.Location) error
	GetByID(ctx context.Context, id string) (*db_models.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

// UpsertByKakaoPlaceID creates or refreshes the row for one Kakao place.
// The incoming struct gets the persisted ID either way.
func (r *locationRepository) UpsertByKakaoPlaceID(ctx context.Context, location *db_models.Location) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "kakao_place_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "address", "road_address", "category_group_code",
				"phone", "latitude", "longitude", "updated_at",
			}),
		}).
		Create(location).Error
	if err != nil {
		return err
	}

	// The conflict path does not report the existing primary key back, so
	// read it by the natural key.
	var persisted db_models.Location
	if err := r.db.WithContext(ctx).
		Where("kakao_place_id = ?", location.KakaoPlaceID).
		First(&persisted).Error; err != nil {
		return err
	}
	location.ID = persisted.ID
	return nil
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*db_models.Location, error) {
	var location db_models.Location
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}
