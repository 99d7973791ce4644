package mock

import "github.com/frederickpi/pagedate"

var _ pagedate.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagedate.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
