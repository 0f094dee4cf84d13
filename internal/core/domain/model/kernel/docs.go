// Package kernel provides the shared value helpers used across the order
// management domain: timestamp normalization for incoming payloads and the
// calendar-date projections used by API responses.
//
// Two projections exist and both are part of the public API contract:
//   - ShiftedISODate: the list and create views add a fixed 24 hour offset to a
//     stored timestamp before truncating it to YYYY-MM-DD in UTC. Stored
//     timestamps are written one day early by the legacy timezone handling of
//     the front-end, and the offset compensates for it.
//   - LocaleDate: the detail view renders DD/MM/YYYY (en-GB numeric) in the
//     configured display timezone without any offset.
package kernel
