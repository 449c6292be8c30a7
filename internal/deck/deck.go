package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/arcanaland/fortunes/internal/fortune"
)

// Sample sizes used when drawing a reading
const (
	KeywordSample = 2
	MeaningSample = 3
)

// ErrEmptyDeck is returned when drawing from a deck without fortunes
var ErrEmptyDeck = errors.New("deck has no fortunes")

// Deck represents an ordered set of fortunes
type Deck struct {
	Name     string
	Fortunes []fortune.Fortune

	// lower-cased title -> index of its first fortune
	titles map[string]int
}

// Reading is a drawn fortune with a sample of its keywords and meanings
type Reading struct {
	Fortune  fortune.Fortune
	Keywords []string
	Light    []string
	Shadow   []string
}

// New creates a deck from a fortunes document
func New(name string, doc *fortune.Document) *Deck {
	d := &Deck{
		Name:     name,
		Fortunes: doc.Fortunes,
		titles:   make(map[string]int, len(doc.Fortunes)),
	}

	for i, f := range doc.Fortunes {
		key := strings.ToLower(f.Title)
		if _, ok := d.titles[key]; !ok {
			d.titles[key] = i
		}
	}

	return d
}

// Load loads a fortunes document, the format is picked from the file extension
func Load(fs afero.Fs, path string) (*Deck, error) {
	// Check if the fortunes file exists
	if _, err := fs.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("fortunes file not found: %s", path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	doc, err := fortune.Unmarshal(data, fortune.FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return New(path, doc), nil
}

// Len returns the number of fortunes in the deck
func (d *Deck) Len() int {
	return len(d.Fortunes)
}

// Find gets a fortune by its title, ignoring case
func (d *Deck) Find(title string) (*fortune.Fortune, error) {
	i, ok := d.titles[strings.ToLower(strings.TrimSpace(title))]
	if !ok {
		return nil, fmt.Errorf("fortune not found: %s", title)
	}
	return &d.Fortunes[i], nil
}

// Draw picks a random fortune and samples its keywords and meanings
func (d *Deck) Draw(r *rand.Rand) (Reading, error) {
	if len(d.Fortunes) == 0 {
		return Reading{}, ErrEmptyDeck
	}

	f := d.Fortunes[r.IntN(len(d.Fortunes))]
	return Read(r, f)
}

// Read samples a reading out of a single fortune
func Read(r *rand.Rand, f fortune.Fortune) (Reading, error) {
	if f.Type != fortune.TypeTempTarot {
		return Reading{}, fmt.Errorf("unrecognized fortune type %q for %s", f.Type, f.Title)
	}

	return Reading{
		Fortune:  f,
		Keywords: sample(r, f.Keywords, KeywordSample),
		Light:    sample(r, f.Light.Lines, MeaningSample),
		Shadow:   sample(r, f.Shadow.Lines, MeaningSample),
	}, nil
}

// sample returns up to k distinct items in random order
func sample(r *rand.Rand, items []string, k int) []string {
	picked := slices.Clone(items)
	r.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	if k > len(picked) {
		k = len(picked)
	}
	return picked[:k]
}
