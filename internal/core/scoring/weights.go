// Package scoring is the pure, stateless scoring model: weight
// constants, bye penalties, per-team statistics, and the variance- and
// compactness-based balance penalties. Every function here is total;
// there is no failure mode, and an empty game list always scores 0.
package scoring

// Weight constants. Values are exact and load-bearing for tests.
const (
	DrawFillBalance          = 15000.0
	ByePriority1             = 10000.0
	DrawTimeBalance          = 5000.0
	ByePriority2             = 1000.0
	SheetBalance             = 500.0
	ByePriorityLowBase       = 100.0
	PositionBalance          = 50.0
	CompactnessExtraDraw     = 100000.0
	CompactnessMultiEmpty    = 50000.0
	CompactnessExcessEmpties = 30000.0
)
