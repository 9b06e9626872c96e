// Package indicators implements quality indicators for Pareto fronts:
// hypervolume, generational-distance family (GD/IGD/IGD+), coverage,
// spread/uniformity measures, crowding distance, and the Purshouse–Fleming
// objective-conflict measures. Every indicator operates on a *front.Front
// (or a pair of them) and is evaluated under that Front's own
// DirectionVector.
package indicators
