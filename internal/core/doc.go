// Package core normalizes exported viewing period tables into typed records.
//
// This package is the heart of the normalizer, containing all domain logic
// independent of any CLI or output layer. It can be driven by commands,
// other services, or tests without modification.
//
// # Normalization Flow
//
// A run moves through three stages:
//
//  1. [Separator] picks the cell separator from the file extension
//     (.csv or .tsv, nothing else).
//  2. The line source reads the header and splits every following line,
//     skipping lines that cannot be decoded.
//  3. [NormalizeRow] folds each row into a [ViewingPeriod] one cell at a
//     time, pairing header names with cell values by position.
//
// The entry points differ only in what they wrap: [ReadPeriods] works on an
// io.Reader, [ReadFile] opens a path first, and [Ingest] adds run IDs,
// counters, and boundary logs on top.
//
// # Column Vocabulary
//
// Header names are matched verbatim against a fixed vocabulary; there is no
// trimming, folding, or fuzzy matching. Several names may feed the same
// field ("tStartMsec", "tStart", and "startTime" all carry the query time),
// and when a row has more than one of them the last cell wins. Names
// outside the vocabulary are logged and skipped, never fatal.
//
// # Error Handling
//
// Only a malformed value in a numeric or time cell aborts a run, reported
// as a [ParseError] wrapped with its line number. Everything else degrades:
// unknown columns and unparseable statuses are logged, undecodable lines
// are skipped, and an I/O error mid-file keeps the periods already
// collected.
package core
