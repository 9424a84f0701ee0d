package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitlens/pkg/contracts/domain"
)

func TestCalculateSourceDistribution(t *testing.T) {
	records := []domain.CandidateRecord{
		{CandidateName: "A", Source: "Naukri", SubSource: "Job post"},
		{CandidateName: "B", Source: "Naukri", SubSource: "Job post"},
		{CandidateName: "C", Source: "Naukri"},
		{CandidateName: "D", Source: "Referral", SubSource: "Employee"},
		{CandidateName: "E"},
	}

	items := CalculateSourceDistribution(records)
	require.Len(t, items, 3)

	// Sorted descending by count.
	assert.Equal(t, "Naukri", items[0].Source)
	assert.Equal(t, 3, items[0].Count)
	assert.Equal(t, 60, items[0].Percentage)

	// Absent source and sub-source fall into the default buckets.
	var unknown *domain.SourceDistributionItem
	for i := range items {
		if items[i].Source == UnknownSource {
			unknown = &items[i]
		}
	}
	require.NotNil(t, unknown)
	assert.Equal(t, 1, unknown.Count)
	require.Len(t, unknown.SubSources, 1)
	assert.Equal(t, DefaultSubSource, unknown.SubSources[0].SubSource)

	// Sub-sources sorted descending by count within the bucket.
	require.Len(t, items[0].SubSources, 2)
	assert.Equal(t, "Job post", items[0].SubSources[0].SubSource)
	assert.Equal(t, 2, items[0].SubSources[0].Count)
	assert.Equal(t, DefaultSubSource, items[0].SubSources[1].SubSource)
}

func TestCalculateSourceDistributionPercentageSum(t *testing.T) {
	records := []domain.CandidateRecord{
		{CandidateName: "A", Source: "S1"},
		{CandidateName: "B", Source: "S2"},
		{CandidateName: "C", Source: "S2"},
	}

	items := CalculateSourceDistribution(records)
	require.Len(t, items, 2)

	sum := 0
	for _, it := range items {
		sum += it.Percentage
	}
	// Integer rounding per bucket bounds the drift by the number of
	// distinct sources.
	assert.InDelta(t, 100, sum, float64(len(items)))
}

func TestCalculateSourceDistributionEmpty(t *testing.T) {
	items := CalculateSourceDistribution(nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
