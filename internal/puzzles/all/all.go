// Package all links every day's solver into the puzzles registry.
package all

import (
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day01"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day02"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day03"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day04"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day05"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day06"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day07"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day08"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day09"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day10"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day11"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day12"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day13"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day14"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day15"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day16"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day17"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day18"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day19"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day20"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day21"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day22"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day23"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day24"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/day25"
)
