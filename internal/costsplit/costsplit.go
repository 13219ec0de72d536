// Package costsplit distributes shared trip costs across payers.
//
// Both functions are pure and never return errors: zero-cost items are
// skipped, negative costs split symmetrically, and non-finite inputs
// propagate to the output (callers coerce raw values before calling in).
package costsplit

import "math"

// epsilon is the tolerance below which a floating-point remainder is
// considered zero and not worth reassigning.
const epsilon = 1e-6

// Options controls fallback behavior for items without usable payer data.
type Options struct {
	// FallbackOnEmpty makes a recorded-but-empty payer list fall back to
	// the default payer set, the same as a list that was never recorded.
	// When false (the default), only a nil payer list triggers fallback;
	// an explicitly empty list means the item contributes to nobody.
	FallbackOnEmpty bool
}

// ComputeTotals splits the cost of each item evenly across that item's
// payers and returns the per-payer running totals.
//
// The item shape is opaque: cost and payers are read through the supplied
// projections. A nil slice from payers means "payer information never
// recorded" and always falls back to fallbackPayers; a non-nil empty slice
// means "recorded as explicitly empty" and falls back only under
// Options.FallbackOnEmpty.
//
// Every id in fallbackPayers is present in the result, at 0 if it paid for
// nothing, so removing a member's last item still reports them at zero
// rather than dropping the row. Payers referenced by an item but absent
// from fallbackPayers are added on demand.
//
// Division leaves a floating-point remainder on uneven splits; the whole
// remainder goes to the first payer of that item's effective list, which
// keeps the grand total exactly equal to the sum of input costs. Ordering
// of fallbackPayers and of each item's payer list is caller-controlled and
// must be stable across calls for reproducible remainder placement.
func ComputeTotals[T any](
	items []T,
	cost func(T) float64,
	payers func(T) []string,
	fallbackPayers []string,
	opts Options,
) map[string]float64 {
	totals := make(map[string]float64, len(fallbackPayers))
	for _, id := range fallbackPayers {
		totals[id] = 0
	}

	for _, item := range items {
		c := cost(item)
		raw := payers(item)

		var ids []string
		for _, id := range raw {
			if id != "" {
				ids = append(ids, id)
			}
		}

		shouldFallback := raw == nil
		if opts.FallbackOnEmpty {
			shouldFallback = len(ids) == 0
		}

		effective := ids
		if len(effective) == 0 && shouldFallback {
			effective = fallbackPayers
		}

		if c == 0 || len(effective) == 0 {
			continue
		}

		share := c / float64(len(effective))
		for _, id := range effective {
			totals[id] += share
		}

		// Reassign the division remainder so the map still sums to the
		// exact input cost.
		remainder := c - share*float64(len(effective))
		if math.Abs(remainder) > epsilon {
			totals[effective[0]] += remainder
		}
	}

	return totals
}

// BalanceCategory reconciles per-member partial totals against an
// authoritative category total.
//
// Partial totals computed on a different path (a backend aggregate, a
// per-item split) can disagree with the official category total in the
// last decimal places, or undercount it entirely when some items had no
// resolvable payer. The shortfall or surplus is spread evenly across
// memberIDs, then a second-order correction cancels the rounding error of
// that division itself. The correction is only applied when it exceeds the
// tolerance guard, so the returned map sums to total up to epsilon, not
// bit-exactly.
//
// The output is keyed by memberIDs alone; entries of perMember outside
// that roster are ignored. memberIDs[0] receives the final correction, so
// roster order must be stable for reproducible output. Re-balancing an
// already balanced map is a no-op.
func BalanceCategory(total float64, perMember map[string]float64, memberIDs []string) map[string]float64 {
	balanced := make(map[string]float64, len(memberIDs))

	assigned := 0.0
	for _, id := range memberIDs {
		balanced[id] = perMember[id]
		assigned += perMember[id]
	}

	remainder := total - assigned
	if math.Abs(remainder) > epsilon && len(memberIDs) > 0 {
		evenShare := remainder / float64(len(memberIDs))

		afterEven := 0.0
		for _, id := range memberIDs {
			balanced[id] += evenShare
			afterEven += balanced[id]
		}

		if adjust := total - afterEven; math.Abs(adjust) > epsilon {
			balanced[memberIDs[0]] += adjust
		}
	}

	return balanced
}
