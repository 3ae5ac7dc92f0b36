// Command example counts word frequencies with an htable.Table.
//
//	go run ./example [-top N] [file ...]
//
// Words are read from the named files, or from stdin when none are given.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/theflywheel/htable"
)

type wordCount struct {
	word  string
	count int
}

func countWords(table *htable.Table[int], r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		word := strings.ToLower(scanner.Text())

		// The table holds a pointer to each counter, so an existing word is
		// counted without touching the table again.
		if count := table.Get(word); count != nil {
			*count++
			continue
		}

		count := 1
		if _, err := table.Set(word, &count); err != nil {
			return fmt.Errorf("failed to store %q: %w", word, err)
		}
	}
	return scanner.Err()
}

func topWords(table *htable.Table[int], n int) []wordCount {
	counts := make([]wordCount, 0, table.Len())

	it := table.Iterator()
	for it.Next() {
		counts = append(counts, wordCount{word: it.Key(), count: *it.Value()})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})

	if n >= 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

func main() {
	top := flag.Int("top", 10, "number of most frequent words to print (-1 for all)")
	flag.Parse()

	table, err := htable.New[int]()
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	defer table.Destroy()

	if flag.NArg() == 0 {
		if err := countWords(table, os.Stdin); err != nil {
			log.Fatalf("Failed to read stdin: %v", err)
		}
	}

	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", path, err)
		}

		err = countWords(table, f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to count words in %s: %v", path, err)
		}
	}

	fmt.Printf("%d distinct words (capacity %d)\n", table.Len(), table.Cap())
	for _, wc := range topWords(table, *top) {
		fmt.Printf("%8d %s\n", wc.count, wc.word)
	}
}
