package championship

// DefaultPointsSystem is the Formula 1 points system.
var DefaultPointsSystem = PointsSystem{
	Places: []int{
		25,
		18,
		15,
		12,
		10,
		8,
		6,
		4,
		2,
		1,
	},
}

// PointsSystem represents the points awarded for finishing positions in an event.
type PointsSystem struct {
	// Places[0] is awarded to the winner.
	Places []int
}

// PointsForPosition uses the PointsSystem to determine what should be awarded to a given finishing position
// (1 is the winner). Positions outside the table score nothing.
func (p PointsSystem) PointsForPosition(position int) int {
	if position < 1 || position > len(p.Places) {
		return 0
	}

	return p.Places[position-1]
}
