package ranking

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/stage"
)

var idx int

// record builds a computed record for a named stage with the given cost and ratio
func record(t *testing.T, name string, cost int, ratio float64) domain.ComputedRecord {
	t.Helper()
	n, err := stage.ParseName(name)
	require.NoError(t, err)

	idx++
	s := &domain.Stage{Index: idx, FullName: name, Cost: cost}
	n.Apply(s)
	if cost == 0 {
		ratio = math.Inf(1)
	}
	return domain.ComputedRecord{Stage: s, ExpPerCost: ratio}
}

func names(records []domain.ComputedRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Stage.FullName
	}
	return out
}

func allFilter(t *testing.T) Filter {
	t.Helper()
	f, err := FilterFromSettings(domain.TableSettings{Difficulty: domain.CeilingAll, IncludeExtraStage: true})
	require.NoError(t, err)
	return f
}

func TestRank_SortsDescendingStable(t *testing.T) {
	records := []domain.ComputedRecord{
		record(t, "N 1-1", 10, 100),
		record(t, "N 1-2", 10, 300),
		record(t, "N 1-3", 10, 200),
		record(t, "N 1-4", 10, 300),
	}

	res := Rank(records, allFilter(t))

	assert.Equal(t, []string{"N 1-2", "N 1-4", "N 1-3", "N 1-1"}, names(res.Records))
	assert.Equal(t, "N 1-1", records[0].Stage.FullName, "input must not be reordered")
}

func TestRank_ZeroCostExcludedButKeptInEventGroup(t *testing.T) {
	records := []domain.ComputedRecord{
		record(t, "N 1-1", 10, 100),
		record(t, "天国", 0, 0),
		record(t, "小地獄", 30, 80),
	}

	f := allFilter(t)
	f.SeparateEvents = true
	res := Rank(records, f)

	assert.Equal(t, []string{"天国", "小地獄"}, names(res.Events))
	assert.Equal(t, []string{"N 1-1", "小地獄"}, names(res.Records))
	assert.True(t, math.IsInf(res.Events[0].ExpPerCost, 1))

	f.SeparateEvents = false
	res = Rank(records, f)
	assert.Empty(t, res.Events)
	assert.NotContains(t, names(res.Records), "天国")
}

func TestRank_ExcludeExtra(t *testing.T) {
	records := []domain.ComputedRecord{
		record(t, "N 3-EX1", 10, 500),
		record(t, "N 3-1", 10, 100),
	}

	f := allFilter(t)
	assert.Len(t, Rank(records, f).Records, 2)

	f.IncludeExtra = false
	assert.Equal(t, []string{"N 3-1"}, names(Rank(records, f).Records))
}

func TestRank_Ceiling(t *testing.T) {
	records := []domain.ComputedRecord{
		record(t, "N 2-1", 10, 10),
		record(t, "H 2-1", 10, 9),
		record(t, "N 8-1", 10, 8),
		record(t, "T 6-1", 10, 7),
		record(t, "T 7-1", 10, 6),
		record(t, "C 9-1", 10, 5),
		record(t, "S 4-1", 10, 4),
		record(t, "S 5-1", 10, 3),
		record(t, "HS 1-1", 10, 2),
		record(t, "中地獄", 50, 1),
	}

	tests := []struct {
		token string
		want  []string
	}{
		{"All", names(records)},
		{"N2", []string{"N 2-1", "中地獄"}},
		{"H2", []string{"N 2-1", "H 2-1", "中地獄"}},
		{"H8", []string{"N 2-1", "H 2-1", "N 8-1", "T 6-1", "中地獄"}},
		{"T7", []string{"N 2-1", "H 2-1", "N 8-1", "T 6-1", "T 7-1", "C 9-1", "中地獄"}},
		{"S4", []string{"N 2-1", "H 2-1", "N 8-1", "T 6-1", "T 7-1", "C 9-1", "S 4-1", "中地獄"}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			f := allFilter(t)
			c, err := ParseCeiling(tt.token)
			require.NoError(t, err)
			f.Ceiling = c

			assert.Equal(t, tt.want, names(Rank(records, f).Records))
		})
	}
}

func TestParseCeiling_Invalid(t *testing.T) {
	for _, token := range []string{"", "all", "X1", "N", "C2", "N10", "HS4", "All "} {
		t.Run(fmt.Sprintf("%q", token), func(t *testing.T) {
			_, err := ParseCeiling(token)
			assert.ErrorIs(t, err, domain.ErrInvalidCeiling)
		})
	}
}

func TestRank_ColorScale(t *testing.T) {
	var records []domain.ComputedRecord
	for i := 0; i < 12; i++ {
		records = append(records, record(t, fmt.Sprintf("N %d-%d", i/9+1, i%9+1), 10, float64(120-10*i)))
	}

	res := Rank(records, allFilter(t))
	require.Len(t, res.Records, 12)

	top, ok := res.Scale(&res.Records[0])
	require.True(t, ok)
	assert.InDelta(t, 1.0, top, 1e-9)

	tenth, ok := res.Scale(&res.Records[9])
	require.True(t, ok)
	assert.InDelta(t, 0.0, tenth, 1e-9)

	mid, ok := res.Scale(&res.Records[5])
	require.True(t, ok)
	assert.InDelta(t, math.Pow(40.0/90.0, 1.5), mid, 1e-9)

	for _, r := range res.Records[10:] {
		_, ok := res.Scale(&r)
		assert.False(t, ok, "records below the tenth must have no scale")
	}

	prev := math.Inf(1)
	for _, r := range res.Records[:10] {
		v, _ := res.Scale(&r)
		assert.LessOrEqual(t, v, prev)
		prev = v
	}
}

func TestRank_ColorScaleEqualRatios(t *testing.T) {
	records := []domain.ComputedRecord{
		record(t, "N 1-1", 10, 50),
		record(t, "N 1-2", 10, 50),
	}

	res := Rank(records, allFilter(t))

	for _, r := range res.Records {
		v, ok := res.Scale(&r)
		require.True(t, ok)
		assert.Equal(t, 1.0, v)
	}
}

func TestRank_EmptyAfterFilter(t *testing.T) {
	records := []domain.ComputedRecord{record(t, "天国", 0, 0)}

	res := Rank(records, allFilter(t))

	assert.Empty(t, res.Records)
	assert.Empty(t, res.ColorScale)
}

func TestRank_OnlyTop20(t *testing.T) {
	var records []domain.ComputedRecord
	for i := 0; i < 25; i++ {
		records = append(records, record(t, fmt.Sprintf("N %d-%d", i/9+1, i%9+1), 10, float64(1000-i)))
	}

	f := allFilter(t)
	assert.Len(t, Rank(records, f).Records, 25)

	f.OnlyTop20 = true
	res := Rank(records, f)
	assert.Len(t, res.Records, 20)
	assert.Equal(t, "N 1-1", res.Records[0].Stage.FullName)
}

func TestCellColor(t *testing.T) {
	assert.Equal(t, RGB{255, 255, 255}, CellColor(0))
	assert.Equal(t, RGB{60, 240, 92}, CellColor(1))
	assert.Equal(t, RGB{158, 248, 174}, CellColor(0.5))
	assert.Equal(t, "rgb(60, 240, 92)", CellColor(1).CSS())
	assert.Equal(t, "#FFFFFF", CellColor(-1).Hex())
}
