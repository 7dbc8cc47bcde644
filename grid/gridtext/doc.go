// Package gridtext parses the line-oriented puzzle text format into a
// grid.Grid, and renders a grid.Grid back to that format.
//
// Format:
//
//   - Lines are trimmed; blank lines are skipped.
//   - '#' starts a comment to end of line; comment-only lines are skipped.
//   - The first remaining line holds a single positive integer S.
//   - The next S lines each hold exactly S whitespace-separated integers.
//   - The union of all S*S integers must be exactly {0, ..., S*S-1}.
//
// Any violation of the grammar above is reported as ErrParse, wrapped with
// positional context. This mirrors the hand-written line scanner the
// distilled specification was ported from: no parser-combinator library is
// pulled in for what is, line by line, whitespace-delimited integers.
package gridtext
