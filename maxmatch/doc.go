// Package maxmatch computes the exact maximum police–thief matching with
// Dinic's max-flow algorithm.
//
// The sequence is turned into a unit-capacity network:
//
//	source → every police position   (capacity 1)
//	police p → thief t if |p−t| ≤ k (capacity 1)
//	every thief position → sink      (capacity 1)
//
// The max-flow value equals the size of a maximum matching. The package is
// the independent reference for catch, whose linear greedy scan must reach
// the same number, and it also reports which pairs a maximum flow used.
//
// Complexity:
//
//	Time:   O(E·√V) on unit-capacity networks, E ≤ #P·(2k+1)
//	Memory: O(V + E)
package maxmatch
