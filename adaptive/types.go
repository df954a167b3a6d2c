// Package adaptive declares the caller-owned State record and the
// locality heuristic's tunables.
package adaptive

// balanceThreshold is the Balance value at or above which the locality
// heuristic gives up and the search falls back to a full scan.
const balanceThreshold = 32

// smallSequence is the window size at or below which galloping is not
// worth the bookkeeping and the full scan runs unconditionally.
const smallSequence = 64

// gallopSeed is the initial doubling step when galloping outward from
// the previous probe position.
const gallopSeed = 32

// State carries locality information between related queries.
//
// Probe is the offset (within the searched window) of the bracket
// found by the previous call; Balance is the distance the previous
// call had to gallop to find it. The zero value is a fresh session.
//
// The record is owned by the caller, mutated in place by every call,
// and only ever re-initialized by the caller replacing it wholesale;
// one State serves one sequence/window pairing and must not be shared
// across goroutines without external locking.
type State struct {
	// Probe is the window offset the next gallop starts from.
	Probe int

	// Balance reflects the previous gallop distance; at or above
	// balanceThreshold the next call takes the full-scan fallback.
	Balance int
}
