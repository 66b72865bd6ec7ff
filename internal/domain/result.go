package domain

// Tier is the color bucket an elapsed time falls into
type Tier int

const (
	TierGreen Tier = iota
	TierYellow
	TierRed
)

func (t Tier) String() string {
	switch t {
	case TierGreen:
		return "green"
	case TierYellow:
		return "yellow"
	case TierRed:
		return "red"
	}
	return "unknown"
}

// Entry is one row of a timing report
type Entry struct {
	ID      string  // Test identifier
	Seconds float64 // Elapsed time in seconds
	Outcome Outcome // Final outcome
	Percent float64 // Share of the total run time, 0..100
	Tier    Tier    // Threshold classification
}

// Report is the sorted set of finished tests of one run
type Report struct {
	Entries      []Entry // Sorted by Seconds, slowest first
	TotalSeconds float64 // Sum of all elapsed times
}

// TestTiming is the per-test value in the JSON report file
type TestTiming struct {
	Status Outcome `json:"status"`
	Time   float64 `json:"time"`
}

// TimingsOutput is the complete JSON report file structure
type TimingsOutput struct {
	Tests map[string]TestTiming `json:"tests"`
}
