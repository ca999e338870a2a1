package converters

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apriori/apriori"
	"github.com/katalvlaran/apriori/itemset"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// Record is one frequent itemset with its support count.
type Record struct {
	Items []string `json:"items" yaml:"items"`
	Count int      `json:"count" yaml:"count"`
}

// Report is the serializable form of a mining result.
type Report struct {
	Support  int      `json:"support" yaml:"support"`
	Itemsets []Record `json:"itemsets" yaml:"itemsets"`
}

// NewReport lists every itemset of res sorted by size, then lexicographically.
func NewReport(res *apriori.Result[string]) Report {
	records := toRecords(res.Entries())
	slices.SortStableFunc(records, func(a, b Record) int {
		if c := cmp.Compare(len(a.Items), len(b.Items)); c != 0 {
			return c
		}
		return itemset.Compare(a.Items, b.Items, strings.Compare)
	})

	return Report{Support: res.Support(), Itemsets: records}
}

// TopReport lists the k most frequent itemsets of res, highest count first.
// k <= 0 lists every itemset.
func TopReport(res *apriori.Result[string], k int) Report {
	return Report{Support: res.Support(), Itemsets: toRecords(res.TopK(k))}
}

func toRecords(entries []itemset.Entry[string]) []Record {
	records := make([]Record, len(entries))
	for i, e := range entries {
		records[i] = Record{Items: e.Itemset, Count: e.Count}
	}

	return records
}

// WriteResult writes NewReport(res) to w in the given format.
func WriteResult(w io.Writer, res *apriori.Result[string], format Format) error {
	return WriteReport(w, NewReport(res), format)
}

// WriteReport encodes rep to w, keeping the order of rep.Itemsets.
func WriteReport(w io.Writer, rep Report, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, rep)
	case FormatJSON:
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return errors.Wrap(err, "converters: encoding json")
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return errors.Wrap(err, "converters: encoding yaml")
		}
		return enc.Close()
	}

	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// writeText renders one "{a, b}  count" row per itemset under a header.
func writeText(w io.Writer, rep Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEMSET\tCOUNT")
	for _, r := range rep.Itemsets {
		fmt.Fprintf(tw, "%v\t%d\n", itemset.Itemset[string](r.Items), r.Count)
	}

	return tw.Flush()
}
