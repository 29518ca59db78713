package dashboard

// DefaultCity is loaded when the dashboard starts without a configured city
const DefaultCity = "London"

// DashboardState is the page-lifetime state owned by one Pipeline
type DashboardState struct {
	City       string
	ChartBuilt bool
	Loading    bool
	// Cycle is the sequence number of the latest started refresh
	Cycle uint64
}

func (s *DashboardState) begin(city string) uint64 {
	s.Cycle++
	s.City = city
	s.Loading = true
	return s.Cycle
}

func (s *DashboardState) isLatest(cycle uint64) bool {
	return s.Cycle == cycle
}

// CycleOutcome reports what one refresh cycle did; failures are informational only
type CycleOutcome struct {
	CycleID string
	City    string
	// Skipped is set when the trigger carried no usable city
	Skipped bool
	// Stale is set when a newer cycle started before this one completed
	Stale          bool
	WeatherErr     error
	NewsErr        error
	WeatherApplied bool
	NewsApplied    bool
}
