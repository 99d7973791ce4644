package batch

import (
	"time"

	"github.com/frederickpi/pagedate"
)

// CutoffRow is one kept document in cutoff filter output.
type CutoffRow struct {
	URL           string  `json:"url"`
	PublishedDate *string `json:"published_date"`
	ModifiedDate  *string `json:"modified_date"`
	LastDateFound string  `json:"last_date_found"`
}

// Cutoff keeps the records whose latest found date is on or before the
// cutoff, inclusive. Records where nothing was found are dropped: with no
// temporal evidence the document cannot be shown to predate the cutoff.
func Cutoff(records []*pagedate.Record, cutoff time.Time) []CutoffRow {
	var rows []CutoffRow
	for _, rec := range records {
		if rec == nil || rec.Result == nil {
			continue
		}
		last := rec.Result.LastDateFound
		if last.IsZero() || last.After(cutoff) {
			continue
		}
		rows = append(rows, CutoffRow{
			URL:           rec.URL,
			PublishedDate: formatOptDate(rec.Result.PublishedDate),
			ModifiedDate:  formatOptDate(rec.Result.ModifiedDate),
			LastDateFound: last.Format(pagedate.DateFormat),
		})
	}
	return rows
}

func formatOptDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(pagedate.DateFormat)
	return &s
}
