package bvd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Errors returned by catalog lookup and loading.
var (
	ErrUnknownTransducer = errors.New("bvd: unknown transducer")
	ErrInvalidCatalog    = errors.New("bvd: invalid catalog entry")
)

// Library is an immutable collection of named transducers. The zero value
// is an empty library.
type Library struct {
	entries map[string]*Transducer
}

// NewLibrary collects transducers into a library keyed by their names.
// Every entry must be valid and carry a unique, non-empty name. The
// library stores copies, so later label changes on the inputs do not leak
// into it.
func NewLibrary(tds ...*Transducer) (Library, error) {
	entries := make(map[string]*Transducer, len(tds))

	for _, td := range tds {
		err := td.Validate()
		if err != nil {
			return Library{}, err
		}

		if td.name == "" {
			return Library{}, fmt.Errorf("%w: missing name", ErrInvalidCatalog)
		}

		if _, dup := entries[td.name]; dup {
			return Library{}, fmt.Errorf("%w: duplicate name %q", ErrInvalidCatalog, td.name)
		}

		cp := *td
		entries[td.name] = &cp
	}

	return Library{entries: entries}, nil
}

// Select returns a copy of the named transducer. Mutating the labels of
// the returned value does not affect the library. Unknown names yield
// ErrUnknownTransducer with the available names in the message.
func (l Library) Select(name string) (*Transducer, error) {
	td, ok := l.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownTransducer, name, strings.Join(l.Names(), ", "))
	}

	cp := *td

	return &cp, nil
}

// Names returns the sorted names of all entries.
func (l Library) Names() []string {
	names := make([]string, 0, len(l.entries))
	for name := range l.entries {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of entries.
func (l Library) Len() int { return len(l.entries) }

// catalogEntry is the JSON shape of one catalog value. Unknown fields are
// ignored so external catalogs may carry extra metadata.
type catalogEntry struct {
	Rs           float64 `json:"rs"`
	Ls           float64 `json:"ls"`
	Cs           float64 `json:"cs"`
	C0           float64 `json:"c0"`
	Manufacturer string  `json:"manufacturer"`
}

// LoadLibrary parses a JSON catalog from r: an object keyed by transducer
// name whose values carry rs, ls, cs, c0 and an optional manufacturer.
// Every entry is validated; the first invalid entry aborts the load.
func LoadLibrary(r io.Reader) (Library, error) {
	var raw map[string]catalogEntry

	err := json.NewDecoder(r).Decode(&raw)
	if err != nil {
		return Library{}, fmt.Errorf("bvd: parsing catalog: %w", err)
	}

	entries := make(map[string]*Transducer, len(raw))

	for name, e := range raw {
		td, err := New(e.Rs, e.Ls, e.Cs, e.C0)
		if err != nil {
			return Library{}, fmt.Errorf("%w: %q: %v", ErrInvalidCatalog, name, err)
		}

		td.SetName(name).SetManufacturer(e.Manufacturer)
		entries[name] = td
	}

	return Library{entries: entries}, nil
}

// LoadLibraryFile reads a JSON catalog from a file.
func LoadLibraryFile(path string) (Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return Library{}, fmt.Errorf("bvd: opening catalog: %w", err)
	}
	defer f.Close()

	return LoadLibrary(f)
}
