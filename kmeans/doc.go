// Package kmeans implements k-means clustering with Lloyd's algorithm.
//
// Training is deterministic for a fixed seed: centroids are initialized from
// a seeded permutation of the input rows, ties in the assignment step break
// toward the lowest cluster index, and empty clusters are reseeded from rows
// drawn from the same seeded source.
package kmeans
