// Package profile characterizes clusters by auxiliary columns.
//
// It joins cluster assignments back to per-record columns and computes
// member counts and per-cluster means. Aggregation is pure; inputs are never
// mutated.
package profile
