// Package record owns the user records shown by the dashboard.
//
// Records are loaded once and only their status changes afterwards. The store
// hands out copies so the table pipeline can filter and sort freely without
// touching the authoritative sequence.
package record
