// Package distance provides distance calculations between feature vectors.
package distance
