package answerbook

type yamlBook struct {
	Answers map[string]yamlEntry `yaml:"answers"`
}

// Answers are kept as raw strings so that numbers, large integers and the
// multi-line renderings some puzzles produce all round-trip unchanged.
type yamlEntry struct {
	Part1 *string `yaml:"part1"`
	Part2 *string `yaml:"part2"`
}
