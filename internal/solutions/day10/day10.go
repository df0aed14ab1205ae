// Package day10 solves "Factory": each machine has indicator lights,
// buttons that toggle or bump a set of counters, and joltage targets.
package day10

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"aoc2025/internal/puzzle"
)

var Day = puzzle.NewDay(10, "Factory", Part1, Part2)

func init() {
	puzzle.MustRegister(Day)
}

// ErrUnreachable is returned when no button sequence reaches the target.
var ErrUnreachable = errors.New("target cannot be reached")

// Machine is one line of the manual.
type Machine struct {
	Lights   int     // number of indicator lights
	Target   uint64  // bit i set when light i must be on
	Buttons  [][]int // counter indexes each button affects
	Joltages []int
}

// Masks returns each button as a light bitmask.
func (m Machine) Masks() []uint64 {
	masks := make([]uint64, len(m.Buttons))
	for i, b := range m.Buttons {
		for _, idx := range b {
			masks[i] |= 1 << idx
		}
	}
	return masks
}

// ParseMachine reads "[lights] (buttons)... {joltages}".
func ParseMachine(line string) (Machine, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Machine{}, fmt.Errorf("machine %q: too few sections", line)
	}

	lights, ok := trimDelims(fields[0], '[', ']')
	if !ok {
		return Machine{}, fmt.Errorf("machine %q: missing light diagram", line)
	}
	var m Machine
	m.Lights = len(lights)
	if m.Lights > 63 {
		return Machine{}, fmt.Errorf("machine %q: too many lights", line)
	}
	for i, c := range lights {
		switch c {
		case '#':
			m.Target |= 1 << i
		case '.':
		default:
			return Machine{}, fmt.Errorf("machine %q: invalid light %q", line, c)
		}
	}

	joltages, ok := trimDelims(fields[len(fields)-1], '{', '}')
	if !ok {
		return Machine{}, fmt.Errorf("machine %q: missing joltage requirements", line)
	}
	var err error
	if m.Joltages, err = parseInts(joltages); err != nil {
		return Machine{}, fmt.Errorf("machine %q: %w", line, err)
	}
	if len(m.Joltages) != m.Lights {
		return Machine{}, fmt.Errorf("machine %q: %d joltages for %d lights", line, len(m.Joltages), m.Lights)
	}

	for _, f := range fields[1 : len(fields)-1] {
		inner, ok := trimDelims(f, '(', ')')
		if !ok {
			return Machine{}, fmt.Errorf("machine %q: invalid button %q", line, f)
		}
		button, err := parseInts(inner)
		if err != nil {
			return Machine{}, fmt.Errorf("machine %q: %w", line, err)
		}
		for _, idx := range button {
			if idx < 0 || idx >= m.Lights {
				return Machine{}, fmt.Errorf("machine %q: button index %d out of range", line, idx)
			}
		}
		m.Buttons = append(m.Buttons, button)
	}
	return m, nil
}

func trimDelims(s string, open, close byte) (string, bool) {
	if len(s) < 2 || s[0] != open || s[len(s)-1] != close {
		return "", false
	}
	return s[1 : len(s)-1], true
}

func parseInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func parseMachines(input string) ([]Machine, error) {
	lines := puzzle.Lines(input)
	machines := make([]Machine, 0, len(lines))
	for i, line := range lines {
		m, err := ParseMachine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		machines = append(machines, m)
	}
	return machines, nil
}

func sumOver(input string, presses func(Machine) (int, error)) (int, error) {
	machines, err := parseMachines(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for i, m := range machines {
		n, err := presses(m)
		if err != nil {
			return 0, fmt.Errorf("machine %d: %w", i+1, err)
		}
		total += n
	}
	return total, nil
}

// Part1 sums the fewest presses that light each machine's diagram.
func Part1(input string) (int, error) {
	return sumOver(input, FewestLightPresses)
}

// Part2 sums the fewest presses that bring every counter to its joltage.
func Part2(input string) (int, error) {
	return sumOver(input, FewestJoltagePresses)
}

// MaxLightSearchBits bounds the toggle state space FewestLightPresses will
// explore. Pressing a button twice cancels out, so at most
// 2^min(lights, buttons) states are reachable.
const MaxLightSearchBits = 16

// ErrSearchTooLarge is returned when a machine's state space exceeds
// MaxLightSearchBits.
var ErrSearchTooLarge = errors.New("light state space too large")

// FewestLightPresses runs Dijkstra over the toggle states reachable from
// all-off. Every button is an edge s -> s^mask of weight one. The graph is
// grown one press at a time and stops growing once the target appears.
func FewestLightPresses(m Machine) (int, error) {
	masks := m.Masks()
	if bitsNeeded := min(m.Lights, len(masks)); bitsNeeded > MaxLightSearchBits {
		return 0, fmt.Errorf("%w: %d lights, %d buttons", ErrSearchTooLarge, m.Lights, len(masks))
	}

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.AddNode(simple.Node(0))
	target := int64(m.Target)
	frontier := []int64{0}
	for len(frontier) > 0 && g.Node(target) == nil {
		var next []int64
		for _, s := range frontier {
			for _, mask := range masks {
				t := s ^ int64(mask)
				if t == s {
					continue
				}
				if g.Node(t) == nil {
					g.AddNode(simple.Node(t))
					next = append(next, t)
				}
				g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(s), simple.Node(t), 1))
			}
		}
		frontier = next
	}
	if g.Node(target) == nil {
		return 0, ErrUnreachable
	}

	w := path.DijkstraFrom(simple.Node(0), g).WeightTo(target)
	if math.IsInf(w, 1) {
		return 0, ErrUnreachable
	}
	return int(w), nil
}

// combo is the effect of pressing a subset of buttons once each.
type combo struct {
	presses int
	effect  []int
}

// FewestJoltagePresses solves the counters by halving. Any solution presses
// each button some number of times; the buttons pressed an odd number of
// times must match the parity of the target. Subtracting one such subset
// leaves an even target, which is twice a smaller instance of the same
// problem.
func FewestJoltagePresses(m Machine) (int, error) {
	if len(m.Buttons) > 20 {
		return 0, fmt.Errorf("too many buttons: %d", len(m.Buttons))
	}

	byParity := make(map[uint64][]combo)
	for subset := range 1 << len(m.Buttons) {
		c := combo{presses: bits.OnesCount(uint(subset)), effect: make([]int, m.Lights)}
		for i, b := range m.Buttons {
			if subset&(1<<i) == 0 {
				continue
			}
			for _, idx := range b {
				c.effect[idx]++
			}
		}
		byParity[parityMask(c.effect)] = append(byParity[parityMask(c.effect)], c)
	}

	memo := make(map[string]int)
	var solve func(target []int) int
	solve = func(target []int) int {
		zero := true
		for _, v := range target {
			if v != 0 {
				zero = false
				break
			}
		}
		if zero {
			return 0
		}

		key := fmt.Sprint(target)
		if v, ok := memo[key]; ok {
			return v
		}

		best := math.MaxInt
		for _, c := range byParity[parityMask(target)] {
			half, ok := halve(target, c.effect)
			if !ok {
				continue
			}
			if sub := solve(half); sub != math.MaxInt {
				best = min(best, c.presses+2*sub)
			}
		}
		memo[key] = best
		return best
	}

	n := solve(m.Joltages)
	if n == math.MaxInt {
		return 0, ErrUnreachable
	}
	return n, nil
}

func parityMask(v []int) uint64 {
	var mask uint64
	for i, x := range v {
		if x%2 != 0 {
			mask |= 1 << i
		}
	}
	return mask
}

// halve returns (target - effect) / 2 when effect fits under target.
func halve(target, effect []int) ([]int, bool) {
	out := make([]int, len(target))
	for i := range target {
		d := target[i] - effect[i]
		if d < 0 {
			return nil, false
		}
		out[i] = d / 2
	}
	return out, true
}
