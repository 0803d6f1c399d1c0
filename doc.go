// Package gozipper provides an immutable bidirectional cursor (a list
// zipper) over ordered sequences.
//
// # Overview
//
// gozipper represents a position in a nonempty sequence as the element
// under focus plus everything on either side of it. Local moves are O(1),
// bulk moves cost only the distance moved through structure sharing, and
// every operation returns a new cursor while the old one stays valid.
//
// # Key concepts
//   - Zipper: the cursor itself; always focused, never empty.
//   - MaybeZipper: a Zipper or the explicit absence of one. Construction
//     from an empty source and navigation past an edge both yield absence,
//     and absence propagates through chained operations.
//   - Shift: the outcome of a distance-reporting move; when the distance
//     ran past an edge it carries how many positions were available.
//   - Loader: materializes an ordered GORM query into a cursor, with
//     normalized row caps and truncation detection.
//   - Deduper: a start-to-end walk that drops later duplicates and emits
//     an audit log.
//
// See the examples directory for runnable usage.
package gozipper
