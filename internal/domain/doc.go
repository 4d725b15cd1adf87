// Package domain contains the core model for the aoc2021 solutions.
//
// The domain does not depend on YAML parsing, terminals, or the filesystem.
// Infra adapters map the data directory and run artifacts into these types.
package domain
