// Package scale provides column-wise z-score standardization of feature
// matrices.
package scale
