package analytics

import (
	"math"
	"sort"

	"recruitlens/pkg/contracts/domain"
)

// Default bucket names for records missing source attribution.
const (
	UnknownSource    = "Unknown"
	DefaultSubSource = "Direct"
)

// CalculateSourceDistribution groups records by source with a per-source
// sub-source breakdown. Percentages are integer-rounded shares of the
// total record count, so across buckets they sum to 100 give or take one
// per distinct source. Output is sorted descending by count with source
// name as the tiebreak for stable output.
func CalculateSourceDistribution(records []domain.CandidateRecord) []domain.SourceDistributionItem {
	if len(records) == 0 {
		return []domain.SourceDistributionItem{}
	}

	type bucket struct {
		count int
		subs  map[string]int
	}
	buckets := make(map[string]*bucket)

	for _, r := range records {
		source := r.Source
		if source == "" {
			source = UnknownSource
		}
		sub := r.SubSource
		if sub == "" {
			sub = DefaultSubSource
		}

		b, ok := buckets[source]
		if !ok {
			b = &bucket{subs: make(map[string]int)}
			buckets[source] = b
		}
		b.count++
		b.subs[sub]++
	}

	total := len(records)
	items := make([]domain.SourceDistributionItem, 0, len(buckets))
	for source, b := range buckets {
		item := domain.SourceDistributionItem{
			Source:     source,
			Count:      b.count,
			Percentage: int(math.Round(float64(b.count) / float64(total) * 100)),
			SubSources: make([]domain.SubSourceCount, 0, len(b.subs)),
		}
		for sub, count := range b.subs {
			item.SubSources = append(item.SubSources, domain.SubSourceCount{SubSource: sub, Count: count})
		}
		sort.Slice(item.SubSources, func(i, j int) bool {
			if item.SubSources[i].Count != item.SubSources[j].Count {
				return item.SubSources[i].Count > item.SubSources[j].Count
			}
			return item.SubSources[i].SubSource < item.SubSources[j].SubSource
		})
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Source < items[j].Source
	})

	return items
}
