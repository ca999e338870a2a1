// Command apriori mines frequent itemsets from a market-basket file.
//
//	apriori mine --input baskets.csv --support 20 --format json
package main

import "github.com/katalvlaran/apriori/cmd/apriori/cmd"

func main() {
	cmd.Execute()
}
