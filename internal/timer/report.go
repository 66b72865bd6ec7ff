package timer

import (
	"sort"

	"gtt/internal/config"
	"gtt/internal/domain"
)

// BuildReport sorts finished records by elapsed time, slowest first, and
// computes each entry's share of the total and its tier. Ties keep the
// order of the input.
func BuildReport(records []domain.TestRecord, opts config.Timer) domain.Report {
	sorted := make([]domain.TestRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Elapsed > sorted[j].Elapsed
	})

	var total float64
	for _, rec := range sorted {
		total += rec.Seconds()
	}

	entries := make([]domain.Entry, 0, len(sorted))
	for _, rec := range sorted {
		seconds := rec.Seconds()
		percent := 0.0
		if total > 0 {
			percent = seconds / total * 100
		}
		entries = append(entries, domain.Entry{
			ID:      rec.ID,
			Seconds: seconds,
			Outcome: rec.Outcome,
			Percent: percent,
			Tier:    Classify(seconds, opts),
		})
	}

	return domain.Report{Entries: entries, TotalSeconds: total}
}

// Classify returns the tier of an elapsed time in seconds
func Classify(seconds float64, opts config.Timer) domain.Tier {
	switch {
	case seconds <= opts.OK:
		return domain.TierGreen
	case seconds <= opts.Warning:
		return domain.TierYellow
	default:
		return domain.TierRed
	}
}

// Select applies the outcome filter, the top-N limit and the absolute
// threshold, in that order, and returns the entries to display
func Select(report domain.Report, opts config.Timer) []domain.Entry {
	var filter map[domain.Outcome]bool
	if len(opts.TypeFilter) > 0 {
		filter = make(map[domain.Outcome]bool, len(opts.TypeFilter))
		for _, o := range opts.TypeFilter {
			filter[o] = true
		}
	}

	var selected []domain.Entry
	for _, entry := range report.Entries {
		if filter != nil && !filter[entry.Outcome] {
			continue
		}
		if opts.TopN >= 0 && len(selected) >= opts.TopN {
			break
		}
		selected = append(selected, entry)
	}

	if opts.Threshold <= 0 {
		return selected
	}
	visible := selected[:0]
	for _, entry := range selected {
		if entry.Seconds >= opts.Threshold {
			visible = append(visible, entry)
		}
	}
	return visible
}
