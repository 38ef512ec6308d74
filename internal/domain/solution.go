package domain

// Solution is the complete set of routes for one routing run.
// Routes[i] belongs to depot i; Assignment[d] is the depot serving destination d.
type Solution struct {
	Assignment []int   `json:"assignment"`
	Routes     []Route `json:"routes"`
}

// TotalLength sums the closed tour lengths of every depot.
func (s *Solution) TotalLength() float64 {
	total := 0.0
	for _, r := range s.Routes {
		total += r.Length()
	}
	return total
}
