package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/pool"
	"github.com/katalvlaran/frontier/sweep"
)

// errBadToken is returned when a graph header or edge token is not an integer.
var errBadToken = errors.New("frontier: expected an integer")

// tokens splits an input stream into whitespace-separated words.
type tokens struct {
	sc *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

// next returns the next word or io.EOF.
func (t *tokens) next() (string, error) {
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (t *tokens) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadToken, tok)
	}
	return v, nil
}

// readGraph reads "N M" followed by M "u v" pairs. The edge count and the
// node cap are checked before any edge is read.
func readGraph(in *tokens, out io.Writer, maxNodes int) (*core.Graph, error) {
	fmt.Fprint(out, "Enter number of nodes and edges: ")
	n, err := in.nextInt()
	if err != nil {
		return nil, fmt.Errorf("frontier: node count: %w", err)
	}
	m, err := in.nextInt()
	if err != nil {
		return nil, fmt.Errorf("frontier: edge count: %w", err)
	}

	if err = core.ValidateEdgeCount(n, m); err != nil {
		if errors.Is(err, core.ErrInvalidInputBounds) {
			fmt.Fprintln(out, "Error: Too many edges.")
		} else {
			fmt.Fprintln(out, "Error: Invalid number of nodes.")
		}
		return nil, err
	}

	g, err := core.NewGraph(n, core.WithMaxNodes(maxNodes))
	if err != nil {
		fmt.Fprintf(out, "Error: Too many nodes (limit %d).\n", maxNodes)
		return nil, err
	}

	fmt.Fprintln(out, "Enter edges:")
	for i := 0; i < m; i++ {
		u, err := in.nextInt()
		if err != nil {
			return nil, fmt.Errorf("frontier: edge #%d: %w", i, err)
		}
		v, err := in.nextInt()
		if err != nil {
			return nil, fmt.Errorf("frontier: edge #%d: %w", i, err)
		}
		if err = g.AddEdge(u, v); err != nil {
			fmt.Fprintf(out, "Error: edge %d %d references a node outside [1, %d].\n", u, v, n)
			return nil, fmt.Errorf("frontier: edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// session is the interactive menu over one graph.
type session struct {
	ctx    context.Context
	in     *tokens
	out    io.Writer
	graph  *core.Graph
	pool   *pool.Pool
	log    logrus.FieldLogger
	policy sweep.Policy
}

// loop serves the menu until the user exits or input ends.
func (s *session) loop() error {
	for {
		fmt.Fprint(s.out, "\nChoose an option:\n1. Parallel BFS\n2. Parallel DFS\n3. Exit\nEnter your choice: ")
		choice, err := s.in.next()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		if choice == "3" {
			return nil
		}
		strategy, err := sweep.ParseStrategy(choice)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid choice %q.\n", choice)
			continue
		}

		fmt.Fprint(s.out, "Enter starting node: ")
		start, err := s.in.nextInt()
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case errors.Is(err, errBadToken):
			fmt.Fprintln(s.out, "Error: starting node must be an integer.")
			continue
		case err != nil:
			return err
		}
		if !s.graph.HasNode(start) {
			fmt.Fprintf(s.out, "Error: starting node must be in [1, %d].\n", s.graph.Order())
			continue
		}

		if err = s.traverse(strategy, start); err != nil {
			return err
		}
	}
}

// traverse runs one sweep and streams its output.
func (s *session) traverse(strategy sweep.Strategy, start int) error {
	if strategy == sweep.BFS {
		fmt.Fprint(s.out, "Running Parallel BFS...\nVisited nodes: ")
	} else {
		fmt.Fprint(s.out, "Running Parallel DFS...\nVisited nodes: ")
	}

	res, err := sweep.Run(s.graph, start, strategy,
		sweep.WithContext(s.ctx),
		sweep.WithPool(s.pool),
		sweep.WithLogger(s.log),
		sweep.WithPolicy(s.policy),
		sweep.WithOnVisit(func(id int) error {
			_, err := fmt.Fprintf(s.out, "%d ", id)
			return err
		}),
		sweep.WithOnRestart(func(id int) {
			fmt.Fprintf(s.out, "\nGraph has disconnected components. Running again from node: %d\n", id)
		}),
	)
	fmt.Fprintln(s.out)
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"strategy": strategy.String(),
		"start":    start,
		"passes":   len(res.Passes),
		"visited":  s.graph.Visited().Count(),
	}).Info("traversal finished")

	return nil
}
