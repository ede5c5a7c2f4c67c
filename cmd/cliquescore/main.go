// Command cliquescore reads a reference LambdaGraph and a set of
// candidate responses, and prints the full set of intermediate score
// vectors scoring.Score produces.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cliqueai-net/cliqueai/scoring"
)

func main() {
	graphPath := flag.String("graph", "", "Path to a LambdaGraph JSON document")
	responsesPath := flag.String("responses", "", "Path to a JSON array of candidate cliques, e.g. [[0,1,2],[0,1]]")
	difficulty := flag.Float64("difficulty", 0, "Difficulty weight applied to the reward formula")
	flag.Parse()

	if *graphPath == "" || *responsesPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: cliquescore --graph <graph.json> --responses <responses.json> [--difficulty 0.5]")
		os.Exit(1)
	}

	graph, err := readGraph(*graphPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cliquescore: %v\n", err)
		os.Exit(1)
	}

	responses, err := readResponses(*responsesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cliquescore: %v\n", err)
		os.Exit(1)
	}

	scores := scoring.Score(graph, *difficulty, responses)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(scores); err != nil {
		fmt.Fprintf(os.Stderr, "cliquescore: %v\n", err)
		os.Exit(1)
	}
}

func readGraph(path string) (*scoring.LambdaGraph, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g scoring.LambdaGraph
	if err := json.Unmarshal(b, &g); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &g, nil
}

func readResponses(path string) ([][]int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var responses [][]int
	if err := json.Unmarshal(b, &responses); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return responses, nil
}
