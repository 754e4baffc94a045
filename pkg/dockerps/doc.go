// Package dockerps renders container listings as an aligned, colorized
// table of name, ports and status.
//
// Rows come from `docker ps` (or `docker compose ps`) with a tab separated
// --format template. Widths are computed over all rows before anything is
// printed; statuses are only classified while rendering.
package dockerps
