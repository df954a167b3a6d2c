// Package adaptive provides the stateful member of the bsearch family:
// a search that persists a locality hint across calls to accelerate
// repeated queries for nearby keys.
//
// # What
//
//	Each call threads a caller-owned *State{Probe, Balance}. When the
//	recorded Balance is under 32 and the window holds more than 64
//	elements, the search gallops outward from the previous probe
//	position with a doubling step (seed 32) to bracket the key, then
//	taps the bracketed window backward — GALLOP_BRACKET followed by
//	LINEAR_TAIL. When locality has been poor (Balance at or over the
//	threshold) or the window is small, it takes FULL_SCAN_FALLBACK
//	instead: the state is re-initialized and the whole window is
//	scanned backward once. Both finishing states are terminal per call.
//
//	Balance bookkeeping: after each bracket, Balance becomes the
//	distance between the previous probe and the new bracket, so a run
//	of nearby keys keeps it low while scattered keys push it over the
//	threshold and trigger the fallback, which resets the session.
//
// # State ownership
//
//	The caller creates the State (its zero value is ready to use),
//	passes it by pointer into every call of one query session, and
//	drops it when the session ends. There is no hidden global: all
//	persistence lives in that record. Probe is an offset inside the
//	searched window, so a State belongs to one sequence/window pairing;
//	limited drift of the underlying sequence between calls is tolerated
//	(a stale probe is clamped back into the window), but concurrent use
//	of one State requires external mutual exclusion.
//
// # When to use
//
//	Repeated queries walking through a stream with spatial locality,
//	e.g. merging two sorted feeds or resolving a sorted batch of keys.
//	For one-off queries the bisect package is the better default.
//
// # Calling shapes & contract
//
//	Search(seq, key, st), SearchFunc(seq, key, st, less, eq),
//	SearchRange(s, begin, end, key, st) and
//	SearchRangeFunc(s, begin, end, key, st, less, eq).
//	Ascending order is a precondition; begin == end yields the sentinel
//	without reading any element or touching the state; a miss returns
//	end. With a held-fixed or re-initialized State, repeated identical
//	calls return identical positions.
package adaptive
