package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jakestbu/nilch/internal/bang"
)

var (
	file    = flag.String("file", "", "bang table TOML file (defaults to the embedded table)")
	resolve = flag.String("resolve", "", "resolve a query against the table and print the redirect target")
)

// Validates a bang table before it is deployed, and optionally shows where
// a given query would redirect.
func main() {
	flag.Parse()

	table, err := loadTable(*file)
	if err != nil {
		log.Fatalf("bang table rejected: %v", err)
	}

	name := *file
	if name == "" {
		name = "embedded table"
	}
	fmt.Printf("%s OK: %d bangs\n", name, table.Len())

	if *resolve == "" {
		return
	}

	resolver := bang.NewResolver(table)
	target, ok := resolver.Resolve(*resolve)
	if !ok {
		fmt.Printf("%q does not resolve; it would be dispatched as a literal query\n", *resolve)
		os.Exit(1)
	}
	fmt.Printf("%q -> %s\n", *resolve, target)
}

func loadTable(path string) (*bang.Table, error) {
	if path == "" {
		return bang.DefaultTable()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return bang.ParseTable(data)
}
