// Package catalog loads and indexes the word lists the practice page draws
// from. Words are bucketed by syllable count; a word string encodes its
// syllable boundaries as space-separated segments ("ki tap" has two).
//
// The catalog is built once at startup and is immutable afterwards, so it can
// be shared across request handlers without locking.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Catalog construction and lookup errors.
var (
	// ErrEmptyCatalog is returned when no usable word list is found. The
	// server must refuse to start in that case: no catalog, no service.
	ErrEmptyCatalog = errors.New("no usable word lists found")

	// ErrUnknownBucket is returned when a syllable count has no word list.
	ErrUnknownBucket = errors.New("no words of that syllable count")
)

// Word list files are named "<count>_syllable.json", e.g. "3_syllable.json".
var listFilePattern = regexp.MustCompile(`^(\d+)_syllable\.json$`)

// Catalog maps syllable counts to their word lists. Immutable after Load.
type Catalog struct {
	buckets map[int][]string
	counts  []int    // ascending, no duplicates
	words   []string // all buckets flattened in ascending count order
}

// Load builds a Catalog from the word list files in dir. A file that is
// unreadable, not a JSON string array, or empty is skipped with a warning;
// only a catalog with zero usable lists is an error (ErrEmptyCatalog).
func Load(dir string, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read word data directory %q: %w", dir, err)
	}

	buckets := make(map[int][]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		m := listFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}

		count, err := strconv.Atoi(m[1])
		if err != nil || count <= 0 {
			logger.Warn("skipping word list with invalid syllable count",
				"file", entry.Name())
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable word list",
				"file", entry.Name(), "error", err)
			continue
		}

		var words []string
		if err := json.Unmarshal(data, &words); err != nil {
			logger.Warn("skipping malformed word list",
				"file", entry.Name(), "error", err)
			continue
		}

		if len(words) == 0 {
			logger.Warn("skipping empty word list", "file", entry.Name())
			continue
		}

		buckets[count] = words
	}

	if len(buckets) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrEmptyCatalog, dir)
	}

	counts := make([]int, 0, len(buckets))
	for count := range buckets {
		counts = append(counts, count)
	}
	sort.Ints(counts)

	var words []string
	for _, count := range counts {
		words = append(words, buckets[count]...)
	}

	logger.Info("word catalog loaded",
		"buckets", len(counts), "total_words", len(words))

	return &Catalog{buckets: buckets, counts: counts, words: words}, nil
}

// Counts returns the available syllable counts, sorted ascending.
func (c *Catalog) Counts() []int {
	out := make([]int, len(c.counts))
	copy(out, c.counts)
	return out
}

// Bucket returns the word list for the given syllable count.
// Returns ErrUnknownBucket when the count has no list.
func (c *Catalog) Bucket(count int) ([]string, error) {
	words, ok := c.buckets[count]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBucket, count)
	}
	return words, nil
}

// Words returns all words across all buckets, concatenated in ascending
// count order. The order carries no meaning but is reproducible.
// Callers must not modify the returned slice.
func (c *Catalog) Words() []string {
	return c.words
}

// TotalWords returns the number of words across all buckets.
func (c *Catalog) TotalWords() int {
	return len(c.words)
}

// SyllableCount returns the number of syllables encoded in a word string,
// i.e. its whitespace-delimited segment count.
func SyllableCount(word string) int {
	return len(strings.Fields(word))
}
