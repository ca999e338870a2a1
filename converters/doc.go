// Package converters moves transactions and mining results across the
// boundary of the apriori library: it reads market-basket logs into the
// sorted, duplicate-free [][]string the miner expects, and writes a mined
// Result as text, JSON or YAML.
//
// 🚀 Readers
//
//	ReadBaskets(r, opts...)  // one transaction per line, delimited items
//	ReadYAML(r, opts...)     // transactions: [[a, b], [b, c]]
//
// Both readers trim items, reject empty items with ErrEmptyItem and, unless
// WithoutNormalize is given, sort and de-duplicate each transaction. Blank
// lines and lines starting with '#' are skipped by ReadBaskets.
//
//	txs, err := converters.ReadBaskets(f, converters.WithDelimiter(';'))
//	res, err := apriori.Mine(txs, 10)
//
// 📤 Writers
//
//	WriteResult(w, res, converters.FormatJSON)
//	WriteReport(w, report, converters.FormatYAML)
//
// A Report lists itemsets sorted by size, then lexicographically; NewReport
// builds one from a Result and TopReport from the k most frequent itemsets
// (ranked by count). FormatText renders an aligned two-column table.
//
// ⚠️ Errors
//
//   - ErrEmptyItem: an item is blank after trimming (wrapped with its line/transaction).
//   - ErrUnknownFormat: ParseFormat or a writer got an unsupported format name.
//   - Parse errors from encoding/csv and yaml.v3 are wrapped and returned as is.
package converters
