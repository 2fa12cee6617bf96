package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapRadius(t *testing.T) {
	testCases := []struct {
		requested int
		expected  int
	}{
		{5, 5},
		{25, 25},
		{100, 100},
		{1, 5},
		{12, 10},
		{37, 25},
		{1000, 100},
		//距离相同时取较小档位
		{20, 15},
		{75, 50},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, SnapRadius(tc.requested), "requested=%d", tc.requested)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	sc := &SearchCriteria{ZipCode: "62704"}
	sc.Normalize()
	assert.Equal(t, DefaultRadius, sc.Radius)
	assert.Equal(t, DefaultSpecialty, sc.Specialty)
}

func TestNormalizeSnapsRadius(t *testing.T) {
	sc := &SearchCriteria{ZipCode: "62704", Radius: 37, Specialty: "psychiatry"}
	sc.Normalize()
	assert.Equal(t, 25, sc.Radius)
	assert.Equal(t, "psychiatry", sc.Specialty)
}

func TestIsValid(t *testing.T) {
	assert.False(t, (&SearchCriteria{}).IsValid())
	assert.True(t, (&SearchCriteria{ZipCode: "10001"}).IsValid())
}
