package costsplit

import (
	"math"
	"testing"
)

// item is the minimal cost-bearing shape the projections read in tests.
type item struct {
	cost   float64
	paidBy []string
}

func getCost(it item) float64    { return it.cost }
func getPayers(it item) []string { return it.paidBy }

func sumValues(m map[string]float64) float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestComputeTotals_EvenSplitAcrossPayers(t *testing.T) {
	t.Parallel()

	items := []item{{cost: 150, paidBy: []string{"alice", "bob"}}}
	totals := ComputeTotals(items, getCost, getPayers, []string{"alice", "bob"}, Options{})

	if totals["alice"] != 75 || totals["bob"] != 75 {
		t.Errorf("expected 75/75, got alice=%v bob=%v", totals["alice"], totals["bob"])
	}
}

func TestComputeTotals_ThreeWaySplit(t *testing.T) {
	t.Parallel()

	items := []item{{cost: 90, paidBy: []string{"alice", "bob", "charlie"}}}
	totals := ComputeTotals(items, getCost, getPayers, []string{"alice", "bob", "charlie"}, Options{})

	for _, id := range []string{"alice", "bob", "charlie"} {
		if totals[id] != 30 {
			t.Errorf("expected %s=30, got %v", id, totals[id])
		}
	}
}

func TestComputeTotals_EmptyItemsSeedsRosterAtZero(t *testing.T) {
	t.Parallel()

	totals := ComputeTotals(nil, getCost, getPayers, []string{"alice", "bob"}, Options{})

	if len(totals) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(totals))
	}
	for id, v := range totals {
		if v != 0 {
			t.Errorf("expected %s=0, got %v", id, v)
		}
	}
}

func TestComputeTotals_NilPayersFallsBack(t *testing.T) {
	t.Parallel()

	items := []item{{cost: 100, paidBy: nil}}
	totals := ComputeTotals(items, getCost, getPayers, []string{"alice", "bob"}, Options{})

	if totals["alice"] != 50 || totals["bob"] != 50 {
		t.Errorf("nil payer list should split across fallback, got %v", totals)
	}
}

func TestComputeTotals_RecordedEmptyDoesNotFallBackByDefault(t *testing.T) {
	t.Parallel()

	items := []item{{cost: 100, paidBy: []string{}}}
	totals := ComputeTotals(items, getCost, getPayers, []string{"alice", "bob"}, Options{})

	if totals["alice"] != 0 || totals["bob"] != 0 {
		t.Errorf("recorded-empty payer list should contribute nothing, got %v", totals)
	}
}

func TestComputeTotals_FallbackOnEmptyCoversBothCases(t *testing.T) {
	t.Parallel()

	items := []item{
		{cost: 40, paidBy: nil},
		{cost: 60, paidBy: []string{}},
	}
	totals := ComputeTotals(items, getCost, getPayers, []string{"alice", "bob"}, Options{FallbackOnEmpty: true})

	if totals["alice"] != 50 || totals["bob"] != 50 {
		t.Errorf("both items should split across fallback, got %v", totals)
	}
}

func TestComputeTotals_BlankIDsAreDropped(t *testing.T) {
	t.Parallel()

	// Filtering leaves a non-empty list, so no fallback is involved.
	items := []item{{cost: 90, paidBy: []string{"", "alice", ""}}}
	totals := ComputeTotals(items, getCost, getPayers, []string{"alice", "bob"}, Options{})

	if totals["alice"] != 90 || totals["bob"] != 0 {
		t.Errorf("expected alice=90 bob=0, got %v", totals)
	}
}

func TestComputeTotals_AllBlankIDsWithoutFallbackSkips(t *testing.T) {
	t.Parallel()

	// A non-nil list of blanks filters to empty: recorded, not absent.
	items := []item{{cost: 90, paidBy: []string{"", ""}}}
	totals := ComputeTotals(items, getCost, getPayers, []string{"alice"}, Options{})

	if totals["alice"] != 0 {
		t.Errorf("expected alice=0, got %v", totals["alice"])
	}
}

func TestComputeTotals_ZeroCostSkipped(t *testing.T) {
	t.Parallel()

	items := []item{{cost: 0, paidBy: []string{"alice"}}}
	totals := ComputeTotals(items, getCost, getPayers, []string{"alice"}, Options{})

	if totals["alice"] != 0 {
		t.Errorf("zero-cost item should not contribute, got %v", totals["alice"])
	}
}

func TestComputeTotals_NegativeCostSplitsSymmetrically(t *testing.T) {
	t.Parallel()

	items := []item{
		{cost: 100, paidBy: []string{"alice", "bob"}},
		{cost: -40, paidBy: []string{"alice", "bob"}},
	}
	totals := ComputeTotals(items, getCost, getPayers, []string{"alice", "bob"}, Options{})

	if totals["alice"] != 30 || totals["bob"] != 30 {
		t.Errorf("refund should subtract evenly, got %v", totals)
	}
	if !almostEqual(sumValues(totals), 60) {
		t.Errorf("expected sum 60, got %v", sumValues(totals))
	}
}

func TestComputeTotals_PayerOutsideRosterGetsEntry(t *testing.T) {
	t.Parallel()

	items := []item{{cost: 30, paidBy: []string{"guest-1"}}}
	totals := ComputeTotals(items, getCost, getPayers, []string{"alice"}, Options{})

	if totals["guest-1"] != 30 {
		t.Errorf("expected guest-1=30, got %v", totals["guest-1"])
	}
	if totals["alice"] != 0 {
		t.Errorf("expected alice=0, got %v", totals["alice"])
	}
}

func TestComputeTotals_RemainderGoesToFirstEffectivePayer(t *testing.T) {
	t.Parallel()

	cost := 100.0
	payers := []string{"a", "b", "c"}
	items := []item{{cost: cost, paidBy: payers}}
	totals := ComputeTotals(items, getCost, getPayers, payers, Options{})

	share := cost / 3
	remainder := cost - share*3

	if totals["b"] != share || totals["c"] != share {
		t.Errorf("expected b=c=%v, got b=%v c=%v", share, totals["b"], totals["c"])
	}
	if totals["a"] != share+remainder {
		t.Errorf("expected a=%v, got %v", share+remainder, totals["a"])
	}
	if sum := totals["a"] + totals["b"] + totals["c"]; sum != cost {
		t.Errorf("expected exact sum %v, got %v", cost, sum)
	}
}

func TestComputeTotals_ConservationAcrossMixedItems(t *testing.T) {
	t.Parallel()

	roster := []string{"alice", "bob", "charlie", "dana"}
	items := []item{
		{cost: 100, paidBy: []string{"alice", "bob", "charlie"}},
		{cost: 0.1, paidBy: []string{"alice", "bob", "charlie"}},
		{cost: 33.34, paidBy: nil},
		{cost: 1234.56, paidBy: []string{"dana"}},
		{cost: 0.01, paidBy: []string{"alice", "bob", "charlie", "dana"}},
		{cost: -99.99, paidBy: []string{"bob", "dana"}},
	}

	totals := ComputeTotals(items, getCost, getPayers, roster, Options{})

	want := 0.0
	for _, it := range items {
		want += it.cost
	}
	if !almostEqual(sumValues(totals), want) {
		t.Errorf("expected sum %v, got %v", want, sumValues(totals))
	}
}

func TestComputeTotals_RemovingItemRestoresPriorTotals(t *testing.T) {
	t.Parallel()

	roster := []string{"alice", "bob"}
	base := []item{{cost: 150, paidBy: []string{"alice", "bob"}}}

	before := ComputeTotals(base, getCost, getPayers, roster, Options{})
	withExtra := ComputeTotals(append(base[:1:1], item{cost: 80, paidBy: []string{"alice"}}), getCost, getPayers, roster, Options{})
	after := ComputeTotals(base, getCost, getPayers, roster, Options{})

	if withExtra["alice"] != before["alice"]+80 {
		t.Errorf("expected alice raised by 80, got %v -> %v", before["alice"], withExtra["alice"])
	}
	for id := range before {
		if before[id] != after[id] {
			t.Errorf("recompute after removal changed %s: %v vs %v", id, before[id], after[id])
		}
	}
}

func TestComputeTotals_MemberWithNoItemsStaysAtZero(t *testing.T) {
	t.Parallel()

	roster := []string{"alice", "bob"}
	items := []item{{cost: 80, paidBy: []string{"alice"}}}

	totals := ComputeTotals(items, getCost, getPayers, roster, Options{})
	if v, ok := totals["bob"]; !ok || v != 0 {
		t.Errorf("bob must be present at 0, got %v (present=%v)", v, ok)
	}

	// Removing alice's only item keeps both keys, both at zero.
	totals = ComputeTotals(nil, getCost, getPayers, roster, Options{})
	for _, id := range roster {
		if v, ok := totals[id]; !ok || v != 0 {
			t.Errorf("%s must be present at 0 after removal, got %v (present=%v)", id, v, ok)
		}
	}
}

func TestComputeTotals_NonFiniteCostPropagates(t *testing.T) {
	t.Parallel()

	items := []item{{cost: math.NaN(), paidBy: []string{"alice", "bob"}}}
	totals := ComputeTotals(items, getCost, getPayers, []string{"alice", "bob"}, Options{})

	if !math.IsNaN(totals["alice"]) || !math.IsNaN(totals["bob"]) {
		t.Errorf("NaN cost should flow through, got %v", totals)
	}
}

func TestComputeTotals_DeterministicForIdenticalInput(t *testing.T) {
	t.Parallel()

	roster := []string{"a", "b", "c"}
	items := []item{
		{cost: 10.01, paidBy: []string{"c", "a"}},
		{cost: 99.97, paidBy: nil},
		{cost: 0.07, paidBy: []string{"b", "c", "a"}},
	}

	first := ComputeTotals(items, getCost, getPayers, roster, Options{})
	for i := 0; i < 10; i++ {
		again := ComputeTotals(items, getCost, getPayers, roster, Options{})
		for id, v := range first {
			if again[id] != v {
				t.Fatalf("run %d diverged on %s: %v vs %v", i, id, again[id], v)
			}
		}
	}
}
