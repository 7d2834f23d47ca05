package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"gabojago/internal/models/request_models"
)

// KakaoPlace is one document from the Kakao Local keyword search, with the
// string x/y coordinates already coerced to numbers.
type KakaoPlace struct {
	PlaceID           string
	Name              string
	Address           string
	RoadAddress       string
	CategoryGroupCode string
	Phone             string
	Latitude          float64
	Longitude         float64
}

type PlaceSearchInterface interface {
	SearchPlace(ctx context.Context, query request_models.PlaceQuery) ([]KakaoPlace, error)
}

// --------- In-memory cache per (query, category) pair ---------

type searchKey struct {
	Query    string
	Category string
}

type searchCacheEntry struct {
	Places    []KakaoPlace
	ExpiresAt time.Time
}

type PlaceSearchCache interface {
	Get(k searchKey) ([]KakaoPlace, bool)
	Set(k searchKey, v []KakaoPlace, ttl time.Duration)
}

type inMemorySearchCache struct {
	mu    sync.RWMutex
	store map[searchKey]searchCacheEntry
}

func NewInMemorySearchCache() PlaceSearchCache {
	return &inMemorySearchCache{store: make(map[searchKey]searchCacheEntry)}
}

func (c *inMemorySearchCache) Get(k searchKey) ([]KakaoPlace, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return nil, false
	}
	return it.Places, true
}

func (c *inMemorySearchCache) Set(k searchKey, v []KakaoPlace, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = searchCacheEntry{Places: v, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- Kakao Local keyword-search client ---------------

type KakaoLocalClient struct {
	HTTP       *http.Client
	RESTKey    string
	Host       string
	Cache      PlaceSearchCache
	DefaultTTL time.Duration
	PageSize   int
}

func NewKakaoLocalClient(cache PlaceSearchCache) *KakaoLocalClient {
	key := os.Getenv("KAKAO_REST_API_KEY")
	if key == "" {
		panic("KAKAO_REST_API_KEY is empty")
	}
	return &KakaoLocalClient{
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		RESTKey:    key,
		Host:       "https://dapi.kakao.com",
		Cache:      cache,
		DefaultTTL: 24 * time.Hour,
		PageSize:   5,
	}
}

func (c *KakaoLocalClient) SearchPlace(ctx context.Context, query request_models.PlaceQuery) ([]KakaoPlace, error) {
	if query.PlaceName == "" {
		return nil, nil
	}

	k := searchKey{Query: query.PlaceName, Category: query.CategoryGroupCode}
	if places, ok := c.Cache.Get(k); ok {
		return places, nil
	}

	params := url.Values{}
	params.Set("query", query.PlaceName)
	params.Set("size", strconv.Itoa(c.PageSize))
	if query.CategoryGroupCode != "" {
		params.Set("category_group_code", query.CategoryGroupCode)
	}

	endpoint := c.Host + "/v2/local/search/keyword.json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "KakaoAK "+c.RESTKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kakao local search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakao local search: status %d", resp.StatusCode)
	}

	var body struct {
		Documents []struct {
			ID                string `json:"id"`
			PlaceName         string `json:"place_name"`
			AddressName       string `json:"address_name"`
			RoadAddressName   string `json:"road_address_name"`
			CategoryGroupCode string `json:"category_group_code"`
			Phone             string `json:"phone"`
			X                 string `json:"x"`
			Y                 string `json:"y"`
		} `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("kakao local search: decode: %w", err)
	}

	places := make([]KakaoPlace, 0, len(body.Documents))
	for _, doc := range body.Documents {
		// x is longitude, y is latitude; both arrive as strings.
		lng, _ := strconv.ParseFloat(doc.X, 64)
		lat, _ := strconv.ParseFloat(doc.Y, 64)
		places = append(places, KakaoPlace{
			PlaceID:           doc.ID,
			Name:              doc.PlaceName,
			Address:           doc.AddressName,
			RoadAddress:       doc.RoadAddressName,
			CategoryGroupCode: doc.CategoryGroupCode,
			Phone:             doc.Phone,
			Latitude:          lat,
			Longitude:         lng,
		})
	}

	c.Cache.Set(k, places, c.DefaultTTL)
	return places, nil
}
