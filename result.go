package pagedate

import (
	"encoding/json"
	"time"
)

// Confidence is the qualitative reliability label on a resolved date.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Upgrade returns the next level up, saturating at high.
func (c Confidence) Upgrade() Confidence {
	switch c {
	case ConfidenceLow:
		return ConfidenceMedium
	case ConfidenceMedium:
		return ConfidenceHigh
	}
	return ConfidenceHigh
}

// Downgrade returns the next level down, saturating at low.
func (c Confidence) Downgrade() Confidence {
	switch c {
	case ConfidenceHigh:
		return ConfidenceMedium
	case ConfidenceMedium:
		return ConfidenceLow
	}
	return ConfidenceLow
}

// DateFormat is the serialization layout for all result timestamps.
// Dates are carried at day granularity (ISO 8601 calendar dates).
const DateFormat = "2006-01-02"

// Result is the outcome of one extraction call. All fields are set at
// construction and never mutated; zero timestamps mean "absent" and are
// serialized as null. Methods default to the not-found sentinel, never empty.
type Result struct {
	PublishedDate   time.Time
	ModifiedDate    time.Time
	PublishedMethod Method
	ModifiedMethod  Method
	PublishedRaw    string
	ModifiedRaw     string
	LastDateFound   time.Time

	// DatesFound is the chronologically ordered distinct set of every
	// plausible date found anywhere in the document. LastDateFound equals
	// its maximum when non-empty.
	DatesFound []time.Time

	PubConfidence Confidence
	ModConfidence Confidence
}

// EmptyResult returns the all-absent result used for documents where nothing
// date-shaped was found or the input could not be processed at all.
func EmptyResult() *Result {
	return &Result{
		PublishedMethod: MethodNotFound,
		ModifiedMethod:  MethodNotFound,
		PubConfidence:   ConfidenceLow,
		ModConfidence:   ConfidenceLow,
	}
}

// jsonResult is the wire form: ISO 8601 date strings, null for absent values.
type jsonResult struct {
	PublishedDate   *string    `json:"published_date"`
	ModifiedDate    *string    `json:"modified_date"`
	PublishedMethod Method     `json:"published_method"`
	ModifiedMethod  Method     `json:"modified_method"`
	PublishedRaw    *string    `json:"published_raw"`
	ModifiedRaw     *string    `json:"modified_raw"`
	LastDateFound   *string    `json:"last_date_found"`
	DatesFound      []string   `json:"dates_found"`
	PubConfidence   Confidence `json:"pub_confidence"`
	ModConfidence   Confidence `json:"mod_confidence"`
}

// MarshalJSON implements json.Marshaler.
func (r *Result) MarshalJSON() ([]byte, error) {
	out := jsonResult{
		PublishedDate:   formatDate(r.PublishedDate),
		ModifiedDate:    formatDate(r.ModifiedDate),
		PublishedMethod: r.PublishedMethod,
		ModifiedMethod:  r.ModifiedMethod,
		PublishedRaw:    optString(r.PublishedRaw),
		ModifiedRaw:     optString(r.ModifiedRaw),
		LastDateFound:   formatDate(r.LastDateFound),
		DatesFound:      make([]string, 0, len(r.DatesFound)),
		PubConfidence:   r.PubConfidence,
		ModConfidence:   r.ModConfidence,
	}
	for _, d := range r.DatesFound {
		out.DatesFound = append(out.DatesFound, d.Format(DateFormat))
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Result) UnmarshalJSON(data []byte) error {
	var in jsonResult
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	var err error
	if r.PublishedDate, err = parseDate(in.PublishedDate); err != nil {
		return err
	}
	if r.ModifiedDate, err = parseDate(in.ModifiedDate); err != nil {
		return err
	}
	if r.LastDateFound, err = parseDate(in.LastDateFound); err != nil {
		return err
	}
	r.PublishedMethod = in.PublishedMethod
	r.ModifiedMethod = in.ModifiedMethod
	if r.PublishedMethod == "" {
		r.PublishedMethod = MethodNotFound
	}
	if r.ModifiedMethod == "" {
		r.ModifiedMethod = MethodNotFound
	}
	if in.PublishedRaw != nil {
		r.PublishedRaw = *in.PublishedRaw
	}
	if in.ModifiedRaw != nil {
		r.ModifiedRaw = *in.ModifiedRaw
	}
	r.DatesFound = nil
	for _, s := range in.DatesFound {
		d, err := time.Parse(DateFormat, s)
		if err != nil {
			return err
		}
		r.DatesFound = append(r.DatesFound, d.UTC())
	}
	r.PubConfidence = in.PubConfidence
	r.ModConfidence = in.ModConfidence
	return nil
}

func formatDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(DateFormat)
	return &s
}

func parseDate(s *string) (time.Time, error) {
	if s == nil {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateFormat, *s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
