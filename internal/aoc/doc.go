// Package aoc holds the small helpers shared by the daily solvers: input
// splitting and number parsing, 2D/3D points, dense grids with neighbour
// patterns and shortest paths, a generic priority queue, and an undirected
// named graph.
//
// Helpers never panic on malformed input; they return errors wrapping
// ErrInvalidInput so the runner can classify them.
package aoc
