// Package impute prepares noisy, partially-missing survey columns for
// distance-based clustering.
//
// It provides range normalization (out-of-domain values become missing),
// categorical indicator derivation, and group-mean imputation.
package impute
