package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps_HalfOpen(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }
	existing := Interval{Start: at(0), End: at(30)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{name: "touching end", other: Interval{Start: at(30), End: at(31)}, want: false},
		{name: "touching start", other: Interval{Start: at(-10), End: at(0)}, want: false},
		{name: "crossing end", other: Interval{Start: at(29), End: at(31)}, want: true},
		{name: "contained", other: Interval{Start: at(5), End: at(10)}, want: true},
		{name: "containing", other: Interval{Start: at(-5), End: at(40)}, want: true},
		{name: "identical", other: existing, want: true},
		{name: "disjoint", other: Interval{Start: at(60), End: at(90)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Overlaps(existing, tt.other))
			assert.Equal(t, tt.want, Overlaps(tt.other, existing), "overlap must be symmetric")
		})
	}
}

func TestIsDegenerate(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

	assert.True(t, IsDegenerate(Shift{StartShift: start, EndShift: start}))
	assert.True(t, IsDegenerate(Shift{StartShift: start, EndShift: start.Add(-time.Second)}))
	assert.False(t, IsDegenerate(Shift{StartShift: start, EndShift: start.Add(time.Second)}))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*60*60)
	in := Shift{
		ID:         3,
		EmployeeID: 7,
		StartShift: time.Date(2024, time.March, 1, 17, 0, 0, 999_000_000, tokyo),
		EndShift:   time.Date(2024, time.March, 1, 18, 30, 5, 1, tokyo),
	}

	got := normalize(in)

	assert.Equal(t, time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC), got.StartShift)
	assert.Equal(t, time.Date(2024, time.March, 1, 9, 30, 5, 0, time.UTC), got.EndShift)
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, in.EmployeeID, got.EmployeeID)
}
