package domain

// CategoryReport holds one cost category's balanced breakdown.
type CategoryReport struct {
	// Total is the authoritative category total: the sum of every
	// item's cost, whether or not a payer was resolvable.
	Total float64
	// PerMember sums exactly to Total; unattributed cost has been
	// spread across the roster by the category balancer.
	PerMember map[string]float64
}

// CostReport is the full per-trip cost breakdown served to clients.
type CostReport struct {
	TripID     string
	Categories map[CostCategory]CategoryReport
	// Overall is the member-by-member sum across categories. Its own
	// total equals the sum of category totals because each category
	// conserves its total independently.
	Overall map[string]float64
	Total   float64
}
