// Package outcast finds the least related noun of a list.
//
// For every noun xi of the input the distance sum
//
//	d(xi) = Σj distance(xi, xj)
//
// is computed and the noun with the largest sum is returned. Ties go to the
// earliest noun. Distances come from any Distancer, typically a
// *wordnet.WordNet, and are memoised per unordered pair so that repeated
// queries over an overlapping vocabulary cost one search per pair.
//
// Example:
//
//	o, _ := outcast.New(wn)
//	odd, err := o.Outcast([]string{"horse", "zebra", "cat", "bear", "table"})
//	// odd == "table"
package outcast
