// Command cliquesolve reads an edge-list file and prints the resulting
// SolveResult as JSON.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cliqueai-net/cliqueai/bitgraph"
	"github.com/cliqueai-net/cliqueai/config"
	"github.com/cliqueai-net/cliqueai/orchestrator"
)

func main() {
	input := flag.String("input", "", "Path to an edge-list file: one 'u v' pair per line, 0-indexed, '#' comments, comma or whitespace separated")
	timeBudget := flag.Float64("time-budget-sec", config.Default().TimeBudgetSec, "total wall-clock solve budget in seconds")
	enumCap := flag.Int("enum-cap", 0, "cap on returned max-clique count (0 = unbounded)")
	reorder := flag.Bool("reorder", true, "enable degeneracy reordering before search")
	verbose := flag.Bool("verbose", false, "log phase boundaries to stderr")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: cliquesolve --input <edges.txt> [--time-budget-sec 30] [--enum-cap N] [--reorder=true]")
		os.Exit(1)
	}

	f, err := os.Open(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cliquesolve: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	n, edges, err := parseEdgeList(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cliquesolve: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Default()
	cfg.TimeBudgetSec = *timeBudget
	cfg.Reorder = *reorder
	if *enumCap > 0 {
		capN := *enumCap
		cfg.EnumCap = &capN
	}

	logLevel := zerolog.Disabled
	if *verbose {
		logLevel = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(logLevel).
		With().Timestamp().Logger()

	result, err := orchestrator.Solve(n, edges, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cliquesolve: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "cliquesolve: %v\n", err)
		os.Exit(1)
	}
}

// parseEdgeList reads one "u v" pair per line, 0-indexed, skipping blank
// lines and "#" comments. Fields may be comma or whitespace separated.
// n is inferred as max(u,v)+1 over every edge seen.
func parseEdgeList(f *os.File) (int, []bitgraph.Edge, error) {
	var edges []bitgraph.Edge
	maxV := -1

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return 0, nil, fmt.Errorf("line %d: expected 'u v', got %q", lineNo, line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		edges = append(edges, bitgraph.Edge{U: u, V: v})
		if u > maxV {
			maxV = u
		}
		if v > maxV {
			maxV = v
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, err
	}
	return maxV + 1, edges, nil
}
