// Package mining is the entry point of the apriori module: frequent-itemset
// mining over in-memory transaction logs, from combination enumeration to a
// command-line miner.
//
// 🚀 What is in the module?
//
//	• Combinations: lazy, restartable k-of-n enumeration (iter.Seq)
//	• Itemsets: ordered itemsets and a B-tree backed frequency table
//	• Apriori: support counting, join + prune candidate generation, the level loop
//	• Converters: basket/YAML readers, text/JSON/YAML report writers
//	• CLI: apriori mine / apriori version
//
// Under the hood, everything is organized under these subpackages:
//
//	combin/       Indices, Combinations, Collect, Count (binomial)
//	itemset/      Itemset, Compare, IsSubset, Table (google/btree)
//	apriori/      Mine, MineFunc, Generate, CountSingletons, CountCandidates
//	converters/   ReadBaskets, ReadYAML, WriteResult, WriteReport
//	cmd/apriori/  cobra + viper CLI with zap logging
//	examples/     runnable market-basket walkthrough
//
// Quick example:
//
//	T1: beer bread diapers
//	T2: beer diapers milk      support 2  →  {beer, diapers}: 2
//	T3: bread milk
//
//	go get github.com/katalvlaran/apriori/apriori
package mining
