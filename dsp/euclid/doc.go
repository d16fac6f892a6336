// Package euclid distributes k onsets over n steps as evenly as possible
// using Bjorklund's algorithm, the construction behind Euclidean rhythms.
//
// The result always starts on an onset when k > 0: after construction the
// sequence is reversed and any leading rests are rotated to the end.
//
//	euclid.Bjorklund(8, 3) // x..x..x.
package euclid
