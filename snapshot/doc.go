// Package snapshot implements the ordering snapshot of : a
// dense record of every layer's left-to-right node-id order, independent
// of live *layered.Node pointers so it survives any number of subsequent
// permutations of the graph it was taken from.
package snapshot
