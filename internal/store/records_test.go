package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commutrace/commutrace/internal/engine"
)

func newTestStore(t *testing.T) *RecordStore {
	t.Helper()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	return NewRecordStore(kv)
}

func testResult(vehicle string, perDay float64) engine.Result {
	return engine.Result{
		PerDay:         perDay,
		PerWeek:        perDay * 5,
		PerYear:        perDay * 260,
		Unit:           "lbs",
		VehicleKey:     vehicle,
		DistanceMiles:  35,
		Efficiency:     23,
		EfficiencyUnit: "mpg",
	}
}

func TestAppendAndList(t *testing.T) {
	s := newTestStore(t)

	first := NewRecord(testResult("SUV", 29.83), time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	second := NewRecord(testResult("Bus", 2.49), time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))

	require.NoError(t, s.Append(first))
	require.NoError(t, s.Append(second))

	got := s.List()
	require.Len(t, got, 2)

	// Most-recent-first: reverse insertion order.
	assert.Equal(t, "Bus", got[0].VehicleType)
	assert.Equal(t, "SUV", got[1].VehicleType)
	assert.Equal(t, second.ID, got[0].ID)
}

func TestListEmptyStore(t *testing.T) {
	s := newTestStore(t)

	got := s.List()
	assert.Empty(t, got)
}

func TestClearThenList(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Append(NewRecord(testResult("SUV", 29.83), time.Now())))
	require.NoError(t, s.Clear())

	got := s.List()
	assert.Empty(t, got)

	// Clearing an already-empty store is fine.
	assert.NoError(t, s.Clear())
}

func TestAppendAfterCorruptBlob(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	s := NewRecordStore(kv)

	// Corrupt data is treated as an empty list, not an error.
	require.NoError(t, kv.Set("records", []byte("{not json")))
	require.NoError(t, s.Append(NewRecord(testResult("SUV", 29.83), time.Now())))

	got := s.List()
	assert.Len(t, got, 1)
}

func TestListCorruptBlobYieldsEmpty(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	s := NewRecordStore(kv)

	require.NoError(t, kv.Set("records", []byte("{not json")))

	// Read failures never surface; the log just appears empty.
	assert.Empty(t, s.List())
}

func TestListUpgradesLegacyRecords(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	s := NewRecordStore(kv)

	// A record written before the per-record unit tags existed.
	legacy := `[{
		"id": "01HZX5J9B0",
		"timestamp": "2024-06-01T08:00:00Z",
		"vehicle_type": "SUV",
		"distance_miles": 35,
		"efficiency": 23,
		"emissions_per_day": 29.83,
		"emissions_per_week": 149.13,
		"emissions_per_year": 7754.78
	}]`
	require.NoError(t, kv.Set("records", []byte(legacy)))

	got := s.List()
	require.Len(t, got, 1)

	assert.True(t, got[0].AssumedLegacyUnits)
	assert.Equal(t, "lbs", got[0].EmissionsUnit)
	assert.Equal(t, "mpg", got[0].EfficiencyUnit)
}

func TestRecordImmutableOnDisk(t *testing.T) {
	s := newTestStore(t)

	rec := NewRecord(testResult("SUV", 29.83), time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, s.Append(rec))

	got := s.List()
	got[0].EmissionsPerDay = 999

	again := s.List()
	assert.InDelta(t, 29.83, again[0].EmissionsPerDay, 1e-9)
}

func TestNewRecordIDDerivedFromTimestamp(t *testing.T) {
	ts := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	a := NewRecord(testResult("SUV", 29.83), ts)
	b := NewRecord(testResult("SUV", 29.83), ts.Add(time.Hour))

	assert.NotEqual(t, a.ID, b.ID)
	// ULIDs sort by creation time.
	assert.Less(t, a.ID, b.ID)
	assert.Equal(t, ts, a.Timestamp)
}

func TestCount(t *testing.T) {
	s := newTestStore(t)

	assert.Zero(t, s.Count())

	require.NoError(t, s.Append(NewRecord(testResult("SUV", 29.83), time.Now())))

	assert.Equal(t, 1, s.Count())
}
