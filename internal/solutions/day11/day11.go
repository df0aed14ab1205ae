// Package day11 solves "Reactor": count the data paths through a directed
// network of devices.
package day11

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"aoc2025/internal/puzzle"
)

var Day = puzzle.NewDay(11, "Reactor", Part1, Part2)

func init() {
	puzzle.MustRegister(Day)
}

// Network is the device graph with its devices in topological order. A
// device listing the same output twice has two parallel lines to it.
type Network struct {
	g     *multi.DirectedGraph
	ids   map[string]int64
	order []graph.Node
}

// ParseNetwork reads "device: outputs" lines.
func ParseNetwork(input string) (*Network, error) {
	n := &Network{g: multi.NewDirectedGraph(), ids: make(map[string]int64)}
	for i, line := range puzzle.Lines(input) {
		name, outputs, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("line %d: expected \"device: outputs\", got %q", i+1, line)
		}
		from := n.node(name)
		for _, out := range strings.Fields(outputs) {
			to := n.node(out)
			if to.ID() == from.ID() {
				return nil, fmt.Errorf("line %d: device %s feeds itself", i+1, name)
			}
			n.g.SetLine(n.g.NewLine(from, to))
		}
	}

	order, err := topo.Sort(n.g)
	if err != nil {
		return nil, fmt.Errorf("network has a loop: %w", err)
	}
	n.order = order
	return n, nil
}

func (n *Network) node(name string) graph.Node {
	if id, ok := n.ids[name]; ok {
		return n.g.Node(id)
	}
	node := n.g.NewNode()
	n.g.AddNode(node)
	n.ids[name] = node.ID()
	return node
}

// Paths counts the distinct paths from one device to another. Parallel
// lines count as separate paths.
func (n *Network) Paths(from, to string) (int, error) {
	src, ok := n.ids[from]
	if !ok {
		return 0, fmt.Errorf("unknown device %q", from)
	}
	dst, ok := n.ids[to]
	if !ok {
		return 0, fmt.Errorf("unknown device %q", to)
	}

	counts := map[int64]int{src: 1}
	for _, u := range n.order {
		c := counts[u.ID()]
		if c == 0 {
			continue
		}
		succ := n.g.From(u.ID())
		for succ.Next() {
			v := succ.Node().ID()
			counts[v] += c * n.g.Lines(u.ID(), v).Len()
		}
	}
	return counts[dst], nil
}

// Part1 counts every path from "you" to "out".
func Part1(input string) (int, error) {
	n, err := ParseNetwork(input)
	if err != nil {
		return 0, err
	}
	return n.Paths("you", "out")
}

// Part2 counts the paths from "svr" to "out" that visit both "dac" and
// "fft". The graph is acyclic so only one of the two orders can have paths.
func Part2(input string) (int, error) {
	n, err := ParseNetwork(input)
	if err != nil {
		return 0, err
	}
	via := func(stops ...string) (int, error) {
		total := 1
		for i := 0; i+1 < len(stops); i++ {
			p, err := n.Paths(stops[i], stops[i+1])
			if err != nil {
				return 0, err
			}
			total *= p
		}
		return total, nil
	}

	dacFirst, err := via("svr", "dac", "fft", "out")
	if err != nil {
		return 0, err
	}
	fftFirst, err := via("svr", "fft", "dac", "out")
	if err != nil {
		return 0, err
	}
	return dacFirst + fftFirst, nil
}
