package batch

import "github.com/frederickpi/pagedate"

// CompareStats summarizes how the pipeline's answers line up with the
// baseline extractor's over a set of records.
type CompareStats struct {
	Total         int `json:"total"`
	PublishedBoth int `json:"published_both"`
	PublishedSame int `json:"published_same"`
	PublishedOurs int `json:"published_ours_only"`
	PublishedBase int `json:"published_baseline_only"`
	ModifiedBoth  int `json:"modified_both"`
	ModifiedSame  int `json:"modified_same"`
	ModifiedOurs  int `json:"modified_ours_only"`
	ModifiedBase  int `json:"modified_baseline_only"`
}

// Compare tallies agreement between pipeline and baseline answers. Records
// without a baseline answer are counted in Total only.
func Compare(records []*pagedate.Record) CompareStats {
	var stats CompareStats
	for _, rec := range records {
		if rec == nil || rec.Result == nil {
			continue
		}
		stats.Total++
		if rec.Baseline == nil {
			continue
		}

		ours, base := rec.Result.PublishedDate, rec.Baseline.Published
		switch {
		case !ours.IsZero() && !base.IsZero():
			stats.PublishedBoth++
			if ours.Equal(base) {
				stats.PublishedSame++
			}
		case !ours.IsZero():
			stats.PublishedOurs++
		case !base.IsZero():
			stats.PublishedBase++
		}

		ours, base = rec.Result.ModifiedDate, rec.Baseline.Modified
		switch {
		case !ours.IsZero() && !base.IsZero():
			stats.ModifiedBoth++
			if ours.Equal(base) {
				stats.ModifiedSame++
			}
		case !ours.IsZero():
			stats.ModifiedOurs++
		case !base.IsZero():
			stats.ModifiedBase++
		}
	}
	return stats
}
