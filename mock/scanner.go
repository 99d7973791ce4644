package mock

import "github.com/frederickpi/pagedate"

var _ pagedate.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of pagedate.Scanner.
type Scanner struct {
	MethodFn func() pagedate.Method
	ScanFn   func(src pagedate.Source) []pagedate.Candidate
}

func (s *Scanner) Method() pagedate.Method {
	return s.MethodFn()
}

func (s *Scanner) Scan(src pagedate.Source) []pagedate.Candidate {
	return s.ScanFn(src)
}
