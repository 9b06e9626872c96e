// Package archive implements a layered Pareto archive: a sequence of Fronts
// F0, F1, ... F(k-1) where F0 is the Pareto-optimal layer, F1 is
// Pareto-optimal among what remains once F0's points are set aside, and so
// on — the classic non-dominated sort layering used by NSGA-II.
//
// An optional capacity bounds the archive's total size; once exceeded,
// entries are pruned from the deepest layer, removing the point with the
// largest crowding distance (the one in the most isolated region) each time.
package archive
