// Package parquetstats computes per-column min/max statistics for parquet
// files, and encodes/decodes them using the plain encoding that the parquet
// format mandates for the min_value and max_value fields of the Statistics
// structure.
//
// One accumulator is created per column at schema resolution time, is fed
// values by a single producer, and can later be merged with accumulators for
// the same column coming from other producers. The final min/max pair is
// written into a parquet.Statistics object to be embedded in the file footer.
package parquetstats
