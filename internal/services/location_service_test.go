package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gabojago/internal/models/db_models"
	"gabojago/internal/models/request_models"
	"gabojago/pkg/utils"
)

type fakePlaceSearch struct {
	results map[string][]KakaoPlace
	err     error
}

func (f *fakePlaceSearch) SearchPlace(ctx context.Context, query request_models.PlaceQuery) ([]KakaoPlace, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query.PlaceName], nil
}

type fakeUpsertRepo struct {
	upserted []*db_models.Location
	err      error
}

func (f *fakeUpsertRepo) UpsertByKakaoPlaceID(ctx context.Context, location *db_models.Location) error {
	if f.err != nil {
		return f.err
	}
	location.ID = uuid.New()
	f.upserted = append(f.upserted, location)
	return nil
}

func (f *fakeUpsertRepo) GetByID(ctx context.Context, id string) (*db_models.Location, error) {
	return nil, nil
}

func TestRequestLocationsDeduplicatesByPlaceID(t *testing.T) {
	search := &fakePlaceSearch{results: map[string][]KakaoPlace{
		"몽상드애월": {
			{PlaceID: "100", Name: "몽상드애월", Address: "제주특별자치도 제주시", Latitude: 33.4, Longitude: 126.3},
			{PlaceID: "200", Name: "몽상드애월 2호점", Address: "제주특별자치도 제주시"},
		},
		"애월 카페": {
			{PlaceID: "100", Name: "몽상드애월", Address: "제주특별자치도 제주시"},
			{PlaceID: "", Name: "id 없는 문서"},
		},
	}}
	repo := &fakeUpsertRepo{}
	svc := NewLocationService(search, repo)

	candidates, err := svc.RequestLocations(context.Background(), []request_models.PlaceQuery{
		{PlaceName: "몽상드애월"},
		{PlaceName: "애월 카페"},
	})
	require.NoError(t, err)

	// "100" appears twice and one document has no id; both collapse away.
	require.Len(t, candidates, 2)
	require.Len(t, repo.upserted, 2)

	assert.Equal(t, "몽상드애월", candidates[0].Name)
	assert.NotEmpty(t, candidates[0].ID)
	assert.NotEqual(t, candidates[0].ID, candidates[1].ID)
	assert.InDelta(t, 33.4, candidates[0].Latitude, 1e-9)
}

func TestRequestLocationsEmptyBatch(t *testing.T) {
	svc := NewLocationService(&fakePlaceSearch{}, &fakeUpsertRepo{})

	candidates, err := svc.RequestLocations(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRequestLocationsSearchFailure(t *testing.T) {
	search := &fakePlaceSearch{err: errors.New("dial tcp: timeout")}
	svc := NewLocationService(search, &fakeUpsertRepo{})

	_, err := svc.RequestLocations(context.Background(), []request_models.PlaceQuery{
		{PlaceName: "몽상드애월"},
	})
	assert.ErrorIs(t, err, utils.ErrPlaceSearchFailed)
}

func TestRequestLocationsUpsertFailure(t *testing.T) {
	search := &fakePlaceSearch{results: map[string][]KakaoPlace{
		"몽상드애월": {{PlaceID: "100", Name: "몽상드애월"}},
	}}
	repo := &fakeUpsertRepo{err: errors.New("connection reset")}
	svc := NewLocationService(search, repo)

	_, err := svc.RequestLocations(context.Background(), []request_models.PlaceQuery{
		{PlaceName: "몽상드애월"},
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
