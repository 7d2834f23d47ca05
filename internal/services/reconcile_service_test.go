package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gabojago/internal/models/response_models"
)

func candidate(id, name, address string) response_models.CandidateLocation {
	return response_models.CandidateLocation{
		ID:      id,
		Name:    name,
		Address: address,
	}
}

func tripWindow(days int) TripWindow {
	return TripWindow{
		Start:    time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		DayCount: days,
	}
}

func TestReconcileExactMatchWithRegionFilter(t *testing.T) {
	svc := NewReconcileService()

	// Same-named places in two regions; the address filter must pick Jeju.
	pool := []response_models.CandidateLocation{
		candidate("L1", "몽상드애월", "서울특별시 마포구"),
		candidate("L2", "몽상드애월", "제주특별자치도 제주시 애월읍"),
	}
	days := [][]response_models.RawActivity{
		{{PlaceName: "제주 몽상드애월", ScheduleTime: "10:00"}},
	}

	result := svc.Reconcile(days, pool, tripWindow(1), "제주")

	require.Len(t, result.Days, 1)
	require.Len(t, result.Days[0].Activities, 1)

	act := result.Days[0].Activities[0]
	require.NotNil(t, act.Location)
	assert.Equal(t, "L2", act.Location.ID)
	assert.Equal(t, "2026-03-16 10:00:00", act.ScheduleTime)
	assert.Empty(t, result.Unmatched)
}

func TestReconcileNeverAssignsTwice(t *testing.T) {
	svc := NewReconcileService()

	pool := []response_models.CandidateLocation{
		candidate("L1", "가야밀면", "부산광역시 부산진구"),
	}
	days := [][]response_models.RawActivity{
		{
			{PlaceName: "부산 가야밀면"},
			{PlaceName: "부산 가야밀면"},
		},
	}

	result := svc.Reconcile(days, pool, tripWindow(1), "부산")

	acts := result.Days[0].Activities
	require.Len(t, acts, 2)
	require.NotNil(t, acts[0].Location)
	assert.Equal(t, "L1", acts[0].Location.ID)
	assert.Nil(t, acts[1].Location)

	require.Len(t, result.Unmatched, 1)
	assert.Equal(t, "가야밀면", result.Unmatched[0].SearchName)
	assert.Equal(t, 0, result.Unmatched[0].RegionCandidates)
}

func TestReconcileEmptyPoolDegrades(t *testing.T) {
	svc := NewReconcileService()

	days := [][]response_models.RawActivity{
		{{PlaceName: "제주 협재해수욕장"}},
		{{PlaceName: "제주 성산일출봉"}},
	}

	result := svc.Reconcile(days, nil, tripWindow(2), "제주")

	require.Len(t, result.Days, 2)
	for _, day := range result.Days {
		for _, act := range day.Activities {
			assert.Nil(t, act.Location)
			assert.Len(t, act.ScheduleTime, 19)
		}
	}
	assert.Len(t, result.Unmatched, 2)
}

func TestReconcileBlankNameSkipsMatching(t *testing.T) {
	svc := NewReconcileService()

	pool := []response_models.CandidateLocation{
		candidate("L1", "광장시장", "서울특별시 종로구"),
	}
	days := [][]response_models.RawActivity{
		{{PlaceName: "   ", Memo: "이동"}},
	}

	result := svc.Reconcile(days, pool, tripWindow(1), "서울")

	acts := result.Days[0].Activities
	require.Len(t, acts, 1)
	assert.Nil(t, acts[0].Location)
	// A blank name is not a failed lookup, so it is not reported.
	assert.Empty(t, result.Unmatched)
}

func TestReconcileSubstringAndTokenTiers(t *testing.T) {
	svc := NewReconcileService()

	pool := []response_models.CandidateLocation{
		candidate("L1", "몽상드애월 카페", "제주특별자치도 제주시 애월읍"),
		candidate("L2", "안목해변커피거리", "강원특별자치도 강릉시"),
	}
	days := [][]response_models.RawActivity{
		{
			// Substring tier: folded candidate contains the folded search name.
			{PlaceName: "제주 몽상드애월"},
			// Token tier: "안목해변" is contained in the candidate name.
			{PlaceName: "강릉 안목해변 일출"},
		},
	}

	result := svc.Reconcile(days, pool, tripWindow(1), "")

	acts := result.Days[0].Activities
	require.NotNil(t, acts[0].Location)
	assert.Equal(t, "L1", acts[0].Location.ID)
	require.NotNil(t, acts[1].Location)
	assert.Equal(t, "L2", acts[1].Location.ID)
}

func TestReconcileRegionFallbackAssignsLeftover(t *testing.T) {
	svc := NewReconcileService()

	// Name does not line up at all, but one candidate is regionally
	// plausible; it is assigned rather than dropped.
	pool := []response_models.CandidateLocation{
		candidate("L1", "전혀다른이름", "제주특별자치도 서귀포시"),
	}
	days := [][]response_models.RawActivity{
		{{PlaceName: "제주 우도땅콩아이스크림"}},
	}

	result := svc.Reconcile(days, pool, tripWindow(1), "제주")

	act := result.Days[0].Activities[0]
	require.NotNil(t, act.Location)
	assert.Equal(t, "L1", act.Location.ID)
	assert.Empty(t, result.Unmatched)
}

func TestReconcileNoRegionCandidatesNoNameMatch(t *testing.T) {
	svc := NewReconcileService()

	// Nothing in the target region and no name agreement either: the
	// full-pool retry still finds no name match, and the leftover rule does
	// not fire because the region-filtered set was empty.
	pool := []response_models.CandidateLocation{
		candidate("L1", "전혀다른이름", "서울특별시 중구"),
	}
	days := [][]response_models.RawActivity{
		{{PlaceName: "제주 우도땅콩아이스크림"}},
	}

	result := svc.Reconcile(days, pool, tripWindow(1), "제주")

	act := result.Days[0].Activities[0]
	assert.Nil(t, act.Location)
	require.Len(t, result.Unmatched, 1)
	assert.Equal(t, 0, result.Unmatched[0].RegionCandidates)
}

func TestReconcilePreservesOrderAndDates(t *testing.T) {
	svc := NewReconcileService()

	days := [][]response_models.RawActivity{
		{{PlaceName: "A"}, {PlaceName: "B"}},
		{{PlaceName: "C"}},
		{},
	}

	result := svc.Reconcile(days, nil, tripWindow(3), "")

	require.Len(t, result.Days, 3)
	assert.Equal(t, 1, result.Days[0].Day)
	assert.Equal(t, "2026-03-16", result.Days[0].Date)
	assert.Equal(t, "2026-03-17", result.Days[1].Date)
	assert.Equal(t, "2026-03-18", result.Days[2].Date)

	assert.Equal(t, "A", result.Days[0].Activities[0].PlaceName)
	assert.Equal(t, "B", result.Days[0].Activities[1].PlaceName)
	assert.Len(t, result.Days[2].Activities, 0)

	// Untimed activities within a day stagger hourly from 09:00.
	assert.Equal(t, "2026-03-16 09:00:00", result.Days[0].Activities[0].ScheduleTime)
	assert.Equal(t, "2026-03-16 10:00:00", result.Days[0].Activities[1].ScheduleTime)
}

func TestReconcileDeterministic(t *testing.T) {
	svc := NewReconcileService()

	pool := []response_models.CandidateLocation{
		candidate("L1", "몽상드애월", "제주특별자치도 제주시"),
		candidate("L2", "협재해수욕장", "제주특별자치도 제주시"),
		candidate("L3", "성산일출봉", "제주특별자치도 서귀포시"),
	}
	days := [][]response_models.RawActivity{
		{{PlaceName: "제주 몽상드애월"}, {PlaceName: "제주 협재해수욕장"}},
		{{PlaceName: "제주 성산일출봉"}},
	}

	first := svc.Reconcile(days, pool, tripWindow(2), "제주")
	second := svc.Reconcile(days, pool, tripWindow(2), "제주")

	assert.Equal(t, first, second)
}
