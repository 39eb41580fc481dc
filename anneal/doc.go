// Package anneal drives the distributed simulated-annealing search over
// degree-preserving 2-opt rewirings: geometric cooling, Metropolis
// acceptance, and partitioned energy evaluation reduced across ranks.
//
// Run implements one geometric cooling schedule with a single Metropolis
// acceptance rule; alternative neighborhood operators, reheating, and
// restart strategies are out of scope.
package anneal
