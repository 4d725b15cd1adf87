package answerbook

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/ports"
)

// Book maps fixture stems to their recorded answers.
type Book struct {
	entries map[string]domain.ExpectedAnswers
}

var _ ports.AnswerBook = (*Book)(nil)

// New returns an empty book.
func New() *Book {
	return &Book{entries: map[string]domain.ExpectedAnswers{}}
}

// Load reads an answer book. A missing file yields an empty book.
func Load(path string) (*Book, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, &domain.OpError{
			Op:   "answerbook.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return Parse(path, b)
}

// Parse decodes answer book YAML. path is only used in errors.
func Parse(path string, b []byte) (*Book, error) {
	var dto yamlBook
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "answerbook.parse",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return mapBook(path, dto)
}

func (b *Book) Expected(ref domain.FixtureRef) (domain.ExpectedAnswers, bool) {
	e, ok := b.entries[ref.Stem()]
	return e, ok
}

// Set records answers for ref, replacing any existing entry.
func (b *Book) Set(ref domain.FixtureRef, e domain.ExpectedAnswers) {
	b.entries[ref.Stem()] = e
}

// Len returns the number of fixtures with recorded answers.
func (b *Book) Len() int { return len(b.entries) }

// Marshal encodes the book with stems in sorted order.
func (b *Book) Marshal() ([]byte, error) {
	keys := make([]string, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	answers := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		e := b.entries[k]
		entry := &yaml.Node{Kind: yaml.MappingNode}
		if e.Part1 != "" {
			entry.Content = append(entry.Content, scalar("part1"), scalar(e.Part1))
		}
		if e.Part2 != "" {
			entry.Content = append(entry.Content, scalar("part2"), scalar(e.Part2))
		}
		answers.Content = append(answers.Content, scalar(k), entry)
	}
	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{scalar("answers"), answers}}
	return yaml.Marshal(doc)
}

func scalar(v string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: v, Tag: "!!str"}
	if strings.Contains(v, "\n") {
		n.Style = yaml.LiteralStyle
	}
	return n
}
