// Package selector implements the word selection policy on top of the
// catalog: uniform random picks, and the practice-side rule that two
// consecutive unconstrained picks should not share a syllable count.
package selector

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/mtb/aren-app/internal/catalog"
)

// ErrEmptyPool is returned when a pick is attempted on an empty pool.
// A validated catalog never produces an empty pool, so hitting this
// indicates a logic error rather than a user-facing condition.
var ErrEmptyPool = errors.New("empty word pool")

// maxRepeatRetries caps the re-pick loop of the repeat-avoidance rule.
// Once exhausted, the repeat is accepted rather than risking a livelock
// when the count distribution is badly skewed.
const maxRepeatRetries = 16

// PickRandom returns a uniformly chosen element of pool.
// A nil rng uses the shared, goroutine-safe default source; tests pass a
// seeded rng for reproducibility.
func PickRandom(rng *rand.Rand, pool []string) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	if rng == nil {
		return pool[rand.IntN(len(pool))], nil
	}
	return pool[rng.IntN(len(pool))], nil
}

// PickForCount returns a uniform pick from the bucket for the given
// syllable count. Returns catalog.ErrUnknownBucket when no such bucket exists.
func PickForCount(rng *rand.Rand, c *catalog.Catalog, count int) (string, error) {
	words, err := c.Bucket(count)
	if err != nil {
		return "", err
	}
	return PickRandom(rng, words)
}

// PickUnconstrained returns a uniform pick across all buckets.
func PickUnconstrained(rng *rand.Rand, c *catalog.Catalog) (string, error) {
	return PickRandom(rng, c.Words())
}

// Source supplies words to a Picker. The server wraps its in-process catalog
// in a CatalogSource; the practice client supplies an HTTP-backed
// implementation hitting the same operations over the wire.
type Source interface {
	// Word returns a word drawn from all buckets.
	Word(ctx context.Context) (string, error)

	// WordForCount returns a word with exactly the given syllable count.
	WordForCount(ctx context.Context, count int) (string, error)

	// Counts returns the available syllable counts.
	Counts(ctx context.Context) ([]int, error)
}

// CatalogSource adapts a *catalog.Catalog to the Source interface.
type CatalogSource struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// NewCatalogSource creates a Source over the given catalog. A nil rng uses
// the shared default source.
func NewCatalogSource(c *catalog.Catalog, rng *rand.Rand) *CatalogSource {
	return &CatalogSource{catalog: c, rng: rng}
}

// Word implements Source.
func (s *CatalogSource) Word(_ context.Context) (string, error) {
	return PickUnconstrained(s.rng, s.catalog)
}

// WordForCount implements Source.
func (s *CatalogSource) WordForCount(_ context.Context, count int) (string, error) {
	return PickForCount(s.rng, s.catalog, count)
}

// Counts implements Source.
func (s *CatalogSource) Counts(_ context.Context) ([]int, error) {
	return s.catalog.Counts(), nil
}

// Picker drives word selection for one practice session. In unconstrained
// mode it avoids showing two consecutive words with the same syllable count,
// re-picking a bounded number of times. Avoidance is skipped entirely when
// fewer than two distinct counts exist, since every pick would repeat.
//
// A Picker is used by a single practice flow and is not safe for concurrent use.
type Picker struct {
	src       Source
	lastCount int // syllable count of the previous pick, 0 before the first
	distinct  int // number of distinct syllable counts, -1 until fetched
}

// NewPicker creates a Picker over the given source.
func NewPicker(src Source) *Picker {
	return &Picker{src: src, distinct: -1}
}

// Next returns the next unconstrained word, applying the repeat-avoidance rule.
func (p *Picker) Next(ctx context.Context) (string, error) {
	if p.distinct < 0 {
		counts, err := p.src.Counts(ctx)
		if err != nil {
			return "", err
		}
		p.distinct = len(counts)
	}

	word, err := p.src.Word(ctx)
	if err != nil {
		return "", err
	}

	if p.distinct > 1 && p.lastCount != 0 {
		for retries := 0; retries < maxRepeatRetries && catalog.SyllableCount(word) == p.lastCount; retries++ {
			word, err = p.src.Word(ctx)
			if err != nil {
				return "", err
			}
		}
	}

	p.lastCount = catalog.SyllableCount(word)
	return word, nil
}

// NextForCount returns the next word for a fixed syllable count. Fixed-bucket
// mode has no repeat-avoidance, so the previous-count state is left untouched.
func (p *Picker) NextForCount(ctx context.Context, count int) (string, error) {
	return p.src.WordForCount(ctx, count)
}
