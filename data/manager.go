package data

import (
	"sort"

	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
)

// DedupeInvestments drops exact (investment, fund) duplicates, keeping the
// first occurrence. Intentional duplicates from concatenated files should be
// removed before sampling so they do not skew the resampling weights.
func DedupeInvestments(investments []*models.Investment) []*models.Investment {
	seen := make(map[string]bool, len(investments))
	deduped := make([]*models.Investment, 0, len(investments))
	for _, inv := range investments {
		combo := inv.InvestmentName + "|" + inv.FundName
		if seen[combo] {
			continue
		}
		seen[combo] = true
		deduped = append(deduped, inv)
	}
	return deduped
}

// SortByEntryDate orders a dataset in place, oldest entry first. The engine
// only needs an ordered, indexable collection; a stable order also keeps the
// dataset hash and seeded sampling reproducible across loads.
func SortByEntryDate(investments []*models.Investment) {
	sort.SliceStable(investments, func(i, j int) bool {
		if !investments[i].EntryDate.Equal(investments[j].EntryDate) {
			return investments[i].EntryDate.Before(investments[j].EntryDate)
		}
		return investments[i].InvestmentName < investments[j].InvestmentName
	})
}
