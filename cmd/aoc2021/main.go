package main

import (
	"github.com/aalvaropc/aoc2021/internal/cli"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/all"
)

func main() {
	cli.Execute()
}
