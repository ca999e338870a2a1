package converters

import (
	"encoding/csv"
	"io"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ReadOption configures ReadBaskets and ReadYAML.
type ReadOption func(*readOptions)

type readOptions struct {
	delimiter rune
	normalize bool
}

func defaultReadOptions() readOptions {
	return readOptions{delimiter: ',', normalize: true}
}

// WithDelimiter sets the item separator of ReadBaskets (default ',').
// Panics if d is a quote, a newline or the comment marker '#'.
func WithDelimiter(d rune) ReadOption {
	if d == '"' || d == '\n' || d == '\r' || d == '#' {
		panic("converters: invalid delimiter")
	}

	return func(o *readOptions) { o.delimiter = d }
}

// WithoutNormalize keeps transactions in file order, duplicates included.
// The caller then owns the ascending, duplicate-free precondition of the miner.
func WithoutNormalize() ReadOption {
	return func(o *readOptions) { o.normalize = false }
}

// ReadBaskets reads one transaction per line from r.
//
// Steps:
//  1. Parse records with encoding/csv (variable field count, quoted items allowed).
//  2. Trim every item; a blank item fails with ErrEmptyItem at its line.
//  3. Normalize: sort and drop duplicates (unless WithoutNormalize).
//
// Blank lines and '#' comments are skipped.
func ReadBaskets(r io.Reader, opts ...ReadOption) ([][]string, error) {
	o := defaultReadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Records.
	cr := csv.NewReader(r)
	cr.Comma = o.delimiter
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "converters: reading baskets")
		}

		// 2. Items; a whitespace-only line counts as blank.
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		line, _ := cr.FieldPos(0)
		tx, err := cleanItems(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}

		// 3. Normalize.
		if o.normalize {
			tx = normalize(tx)
		}
		out = append(out, tx)
	}

	return out, nil
}

// yamlDocument is the on-disk shape read by ReadYAML.
type yamlDocument struct {
	Transactions [][]string `yaml:"transactions"`
}

// ReadYAML reads a document of the form
//
//	transactions:
//	  - [bread, milk]
//	  - [beer, diapers]
//
// Items are trimmed and, unless WithoutNormalize, sorted and de-duplicated.
// WithDelimiter has no effect.
func ReadYAML(r io.Reader, opts ...ReadOption) ([][]string, error) {
	o := defaultReadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "converters: reading yaml")
	}

	out := make([][]string, 0, len(doc.Transactions))
	for i, raw := range doc.Transactions {
		tx, err := cleanItems(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "transaction %d", i)
		}
		if o.normalize {
			tx = normalize(tx)
		}
		out = append(out, tx)
	}

	return out, nil
}

// cleanItems returns trimmed copies of items, failing on the first blank one.
func cleanItems(items []string) ([]string, error) {
	tx := make([]string, len(items))
	for j, it := range items {
		tx[j] = strings.TrimSpace(it)
		if tx[j] == "" {
			return nil, errors.Wrapf(ErrEmptyItem, "field %d", j)
		}
	}

	return tx, nil
}

// normalize sorts tx in place and drops repeated items.
func normalize(tx []string) []string {
	slices.Sort(tx)

	return slices.Compact(tx)
}
