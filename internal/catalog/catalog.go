// Package catalog holds the static element data the periodic table is
// built from. The data ships embedded; a user file may replace it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"chemvista/internal/domain"
)

//go:embed data/elements.yaml
var embeddedElements []byte

// ErrNotFound is returned when a lookup matches no element
var ErrNotFound = errors.New("element not found")

// Catalog is an immutable, indexed set of elements
type Catalog struct {
	elements []domain.Element
	byNumber map[int]int
	bySymbol map[string]int
}

type document struct {
	Elements []domain.Element `yaml:"elements"`
}

// Default returns the embedded catalog
func Default() *Catalog {
	c, err := Parse(strings.NewReader(string(embeddedElements)))
	if err != nil {
		panic(fmt.Sprintf("embedded element data is invalid: %v", err))
	}
	return c
}

// LoadFile reads a catalog from a YAML file
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open element data: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates YAML element data
func Parse(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse element data: %w", err)
	}
	return New(doc.Elements)
}

// New builds a catalog, sorted by atomic number
func New(elements []domain.Element) (*Catalog, error) {
	c := &Catalog{
		elements: make([]domain.Element, len(elements)),
		byNumber: make(map[int]int, len(elements)),
		bySymbol: make(map[string]int, len(elements)),
	}
	copy(c.elements, elements)
	sort.Slice(c.elements, func(i, j int) bool {
		return c.elements[i].AtomicNumber < c.elements[j].AtomicNumber
	})

	for i, e := range c.elements {
		if e.AtomicNumber <= 0 || e.Symbol == "" || e.Name == "" {
			return nil, fmt.Errorf("element %d: atomic_number, symbol and name are required", i)
		}
		if e.Period < 1 || e.Period > 7 || e.Group < 0 || e.Group > 18 {
			return nil, fmt.Errorf("element %s: period %d / group %d out of range", e.Symbol, e.Period, e.Group)
		}
		if _, dup := c.byNumber[e.AtomicNumber]; dup {
			return nil, fmt.Errorf("duplicate atomic number %d", e.AtomicNumber)
		}
		c.byNumber[e.AtomicNumber] = i
		c.bySymbol[strings.ToLower(e.Symbol)] = i
	}
	return c, nil
}

// All returns the elements ordered by atomic number
func (c *Catalog) All() []domain.Element {
	out := make([]domain.Element, len(c.elements))
	copy(out, c.elements)
	return out
}

// Len returns the number of elements
func (c *Catalog) Len() int {
	return len(c.elements)
}

// ByNumber finds an element by atomic number
func (c *Catalog) ByNumber(n int) (domain.Element, error) {
	i, ok := c.byNumber[n]
	if !ok {
		return domain.Element{}, fmt.Errorf("atomic number %d: %w", n, ErrNotFound)
	}
	return c.elements[i], nil
}

// BySymbol finds an element by symbol, ignoring case
func (c *Catalog) BySymbol(symbol string) (domain.Element, error) {
	i, ok := c.bySymbol[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return domain.Element{}, fmt.Errorf("symbol %q: %w", symbol, ErrNotFound)
	}
	return c.elements[i], nil
}

// Lookup accepts an atomic number, symbol or name
func (c *Catalog) Lookup(ref string) (domain.Element, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		return c.ByNumber(n)
	}
	if e, err := c.BySymbol(ref); err == nil {
		return e, nil
	}
	for _, e := range c.elements {
		if strings.EqualFold(e.Name, ref) {
			return e, nil
		}
	}
	return domain.Element{}, fmt.Errorf("%q: %w", ref, ErrNotFound)
}

// Search returns elements whose name or symbol contains query, ignoring case
func (c *Catalog) Search(query string) []domain.Element {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []domain.Element
	for _, e := range c.elements {
		if strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(strings.ToLower(e.Symbol), q) {
			out = append(out, e)
		}
	}
	return out
}
