// Package wordbank holds the static level tables cars draw their words from.
package wordbank

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultLevels []byte

// Sentinel errors
var (
	ErrEmptyBank    = errors.New("word bank has no levels")
	ErrEmptyLevel   = errors.New("word bank level has no words")
	ErrInvalidLevel = errors.New("word bank level must be positive")
)

// Table maps a level number to its candidate words
type Table map[int][]string

// Conflict is a pair of words in one level sharing a common prefix
type Conflict struct {
	Level  int
	Prefix string // longest common prefix
	A, B   string
}

func (c Conflict) String() string {
	return fmt.Sprintf("level %d: %q and %q share prefix %q", c.Level, c.A, c.B, c.Prefix)
}

// Bank selects random words per level
// Not safe for concurrent use: the rng is owned by the game loop
type Bank struct {
	table    Table
	levels   []int // sorted keys
	minLevel int
	maxLevel int
	rng      *rand.Rand
}

// New validates the table and builds a bank drawing from rng
func New(table Table, rng *rand.Rand) (*Bank, error) {
	if len(table) == 0 {
		return nil, ErrEmptyBank
	}

	b := &Bank{
		table:  make(Table, len(table)),
		levels: make([]int, 0, len(table)),
		rng:    rng,
	}

	for level, words := range table {
		if level < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
		}
		cleaned := make([]string, 0, len(words))
		for _, w := range words {
			w = strings.TrimSpace(w)
			if w != "" {
				cleaned = append(cleaned, w)
			}
		}
		if len(cleaned) == 0 {
			return nil, fmt.Errorf("%w: level %d", ErrEmptyLevel, level)
		}
		b.table[level] = cleaned
		b.levels = append(b.levels, level)
	}

	sort.Ints(b.levels)
	b.minLevel = b.levels[0]
	b.maxLevel = b.levels[len(b.levels)-1]

	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(1))
	}
	return b, nil
}

// Default builds a bank from the embedded level tables
func Default(rng *rand.Rand) (*Bank, error) {
	table, err := Parse(defaultLevels)
	if err != nil {
		return nil, fmt.Errorf("embedded levels: %w", err)
	}
	return New(table, rng)
}

// Parse decodes a YAML document with a top level "levels" mapping
func Parse(data []byte) (Table, error) {
	var doc struct {
		Levels Table `yaml:"levels"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode levels: %w", err)
	}
	return doc.Levels, nil
}

// WordFor returns a uniformly random word for level
// Levels above the highest key use the highest key's words, below the lowest use the lowest
func (b *Bank) WordFor(level int) string {
	words := b.Words(level)
	return words[b.rng.Intn(len(words))]
}

// Words returns the candidate list WordFor draws from for level
func (b *Bank) Words(level int) []string {
	if words, ok := b.table[level]; ok {
		return words
	}
	if level > b.maxLevel {
		return b.table[b.maxLevel]
	}
	if level < b.minLevel {
		return b.table[b.minLevel]
	}
	// Gap between defined keys: nearest lower level
	idx := sort.SearchInts(b.levels, level)
	return b.table[b.levels[idx-1]]
}

// MaxLevel returns the highest defined level
func (b *Bank) MaxLevel() int {
	return b.maxLevel
}

// Levels returns the defined levels in ascending order
func (b *Bank) Levels() []int {
	out := make([]int, len(b.levels))
	copy(out, b.levels)
	return out
}

// PrefixConflicts lists word pairs within a level that share a common prefix
// The tables are expected to be prefix free; this is reported, never enforced
func (b *Bank) PrefixConflicts() []Conflict {
	var out []Conflict
	for _, level := range b.levels {
		words := b.table[level]
		for i := 0; i < len(words); i++ {
			for j := i + 1; j < len(words); j++ {
				if p := commonPrefix(words[i], words[j]); p != "" {
					out = append(out, Conflict{Level: level, Prefix: p, A: words[i], B: words[j]})
				}
			}
		}
	}
	return out
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
