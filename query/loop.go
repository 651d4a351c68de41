package query

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/iand/kintree/report"
	"github.com/iand/kintree/tree"
)

type command string

const (
	cmdTotal      command = "t"
	cmdDecades    command = "d"
	cmdYears      command = "y"
	cmdDuplicates command = "n"
	cmdSimilar    command = "s"
	cmdQuit       command = "q"
)

type handler func(w io.Writer, t *tree.Tree)

var handlers = map[command]handler{
	cmdTotal:      total,
	cmdDecades:    decades,
	cmdYears:      years,
	cmdDuplicates: duplicates,
	cmdSimilar:    similar,
}

// Loop reads single-character commands from in and writes the requested
// report to out, until quit or end of input.
func Loop(in io.Reader, out io.Writer, t *tree.Tree) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Are you interested in:")
		fmt.Fprintln(out, "(T)otal number of people in the tree")
		fmt.Fprintln(out, "Total number of people in the tree by (D)ecade")
		fmt.Fprintln(out, "Total number of people in the tree by (Y)ear")
		fmt.Fprintln(out, "(N)ames duplicated")
		fmt.Fprintln(out, "(S)imilar names")
		fmt.Fprintln(out, "(Q)uit")
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			return scanner.Err()
		}

		choice := command(strings.ToLower(strings.TrimSpace(scanner.Text())))
		if choice == cmdQuit {
			return nil
		}

		h, ok := handlers[choice]
		if !ok {
			fmt.Fprintln(out, "Please enter T, D, Y, N, S, or Q.")
			continue
		}
		h(out, t)
	}
}

func total(w io.Writer, t *tree.Tree) {
	fmt.Fprintf(w, "The tree contains %d people total\n", report.Total(t.People))
}

func decades(w io.Writer, t *tree.Tree) {
	for _, dc := range report.ByDecade(t.People) {
		fmt.Fprintf(w, "%s: %d\n", dc.Decade, dc.Count)
	}
}

func years(w io.Writer, t *tree.Tree) {
	for _, yc := range report.ByYear(t.People) {
		fmt.Fprintf(w, "%d: %d\n", yc.Year, yc.Count)
	}
}

func duplicates(w io.Writer, t *tree.Tree) {
	dups := report.DuplicateNames(t.People)
	fmt.Fprintf(w, "There are %d duplicate names in the tree:\n", len(dups))
	for _, name := range dups {
		fmt.Fprintf(w, "* %s\n", name)
	}
}

func similar(w io.Writer, t *tree.Tree) {
	pairs := report.SimilarNames(t.People, report.DefaultSimilarity)
	fmt.Fprintf(w, "There are %d pairs of similar names in the tree:\n", len(pairs))
	for _, pair := range pairs {
		fmt.Fprintf(w, "* %s ~ %s (%.2f)\n", pair.A, pair.B, pair.Similarity)
	}
}
