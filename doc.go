// Package accesscore turns per-origin raw travel-time distributions from an
// upstream routing engine into the accessibility metrics a transportation
// planning pipeline consumes: per-destination travel-time percentiles,
// decay-weighted cumulative accessibility, temporal opportunity density and
// dual accessibility, isochrone contours, and pairwise bootstrap hypothesis
// tests between two regional analyses.
//
// Everything upstream of the reducer — street/transit routing, network
// loading and scenario application, HTTP/queue transport, object-store I/O,
// CSV/shapefile ingestion — is an external collaborator's job; this module
// starts at the routing engine's raw iteration arrays and ends at persisted
// grids and geometry.
//
// Organized as one package per concern:
//
//	mercator/      — Web-Mercator pixel/lon/lat conversions
//	grid/          — opportunity grid: rasterization, binary I/O, upsampling
//	pointset/      — uniform capability interface over destination sets
//	linkage/       — bounded, per-key-exclusive street-network linkage cache
//	decay/         — step/linear/exponential/logistic/sigmoid weight curves
//	reducer/       — percentile and decay-weighted accessibility reduction
//	density/       — per-minute opportunity histogram and dual accessibility
//	result/        — dense pointset×percentile×cutoff accumulator
//	bootstrap/     — pairwise bootstrap hypothesis test between two analyses
//	isochrone/     — marching-squares contour extraction and simplification
//	accessgrid/    — persisted per-origin accessibility time series format
//	accessibility/ — the per-origin orchestration layer tying it all together
//	accesserr/     — the shared error taxonomy every package above returns
package accesscore
