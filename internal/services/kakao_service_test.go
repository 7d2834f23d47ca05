package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gabojago/internal/models/request_models"
)

const keywordSearchBody = `{
	"documents": [
		{
			"id": "26338954",
			"place_name": "몽상드애월",
			"address_name": "제주특별자치도 제주시 애월읍 애월리 2546",
			"road_address_name": "제주특별자치도 제주시 애월읍 애월북서길 56-1",
			"category_group_code": "CE7",
			"phone": "064-799-8900",
			"x": "126.3094",
			"y": "33.4654"
		}
	]
}`

func testKakaoClient(host string) *KakaoLocalClient {
	return &KakaoLocalClient{
		HTTP:       &http.Client{Timeout: time.Second},
		RESTKey:    "test-key",
		Host:       host,
		Cache:      NewInMemorySearchCache(),
		DefaultTTL: time.Minute,
		PageSize:   5,
	}
}

func TestSearchPlaceParsesDocuments(t *testing.T) {
	var gotAuth, gotQuery, gotCategory string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		gotCategory = r.URL.Query().Get("category_group_code")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(keywordSearchBody))
	}))
	defer server.Close()

	client := testKakaoClient(server.URL)

	places, err := client.SearchPlace(context.Background(), request_models.PlaceQuery{
		PlaceName:         "몽상드애월",
		CategoryGroupCode: "CE7",
	})
	require.NoError(t, err)
	require.Len(t, places, 1)

	assert.Equal(t, "KakaoAK test-key", gotAuth)
	assert.Equal(t, "몽상드애월", gotQuery)
	assert.Equal(t, "CE7", gotCategory)

	place := places[0]
	assert.Equal(t, "26338954", place.PlaceID)
	assert.Equal(t, "몽상드애월", place.Name)
	assert.Equal(t, "제주특별자치도 제주시 애월읍 애월리 2546", place.Address)
	assert.Equal(t, "CE7", place.CategoryGroupCode)
	// x/y arrive as strings: x is longitude, y is latitude.
	assert.InDelta(t, 126.3094, place.Longitude, 1e-9)
	assert.InDelta(t, 33.4654, place.Latitude, 1e-9)
}

func TestSearchPlaceCachesPerQuery(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(keywordSearchBody))
	}))
	defer server.Close()

	client := testKakaoClient(server.URL)
	query := request_models.PlaceQuery{PlaceName: "몽상드애월", CategoryGroupCode: "CE7"}

	_, err := client.SearchPlace(context.Background(), query)
	require.NoError(t, err)
	_, err = client.SearchPlace(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	// A different category is a different cache key.
	query.CategoryGroupCode = ""
	_, err = client.SearchPlace(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestSearchPlaceEmptyName(t *testing.T) {
	client := testKakaoClient("http://127.0.0.1:0")

	places, err := client.SearchPlace(context.Background(), request_models.PlaceQuery{})
	require.NoError(t, err)
	assert.Nil(t, places)
}

func TestSearchPlaceUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := testKakaoClient(server.URL)

	_, err := client.SearchPlace(context.Background(), request_models.PlaceQuery{PlaceName: "몽상드애월"})
	assert.Error(t, err)
}
