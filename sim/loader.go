// Reads balance-bot instruction files into an InstructionSet.
//
// Lines are classified by keyword, not by position: a line mentioning "give"
// is a routing rule, a line mentioning "value" is a seed, anything else is
// skipped. Routing rules may appear before or after the seeds that feed them.

package sim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	seedKeyword  = "value"
	routeKeyword = "give"
)

var (
	seedPattern  = regexp.MustCompile(`^value\s+(\d+)\s+goes\s+to\s+bot\s+(\d+)$`)
	routePattern = regexp.MustCompile(`^bot\s+(\d+)\s+gives\s+low\s+to\s+(\w+)\s+(\d+)\s+and\s+high\s+to\s+(\w+)\s+(\d+)$`)
)

type lineKind int

const (
	lineSkipped lineKind = iota
	lineSeed
	lineRoute
)

// LoadInstructions opens path and parses it with ParseInstructions.
func LoadInstructions(path string) (*InstructionSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening instructions: %w", err)
	}
	defer f.Close()

	set, err := ParseInstructions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ParseInstructions reads one instruction per line from r.
// The first malformed instruction aborts parsing; its line number is in the error.
func ParseInstructions(r io.Reader) (*InstructionSet, error) {
	set := NewInstructionSet()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	skipped := 0
	for scanner.Scan() {
		lineNo++
		kind, seed, route, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		switch kind {
		case lineSeed:
			set.AddSeed(seed)
		case lineRoute:
			if err := set.AddRoute(route); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading instructions: %w", err)
	}
	logrus.Debugf("Loaded %d seeds and %d routing rules (%d lines skipped)", len(set.Seeds), len(set.Routes), skipped)
	return set, nil
}

func parseLine(raw string) (lineKind, Seed, Route, error) {
	line := strings.TrimSpace(raw)
	switch {
	case strings.Contains(line, routeKeyword):
		route, err := parseRoute(line)
		return lineRoute, Seed{}, route, err
	case strings.Contains(line, seedKeyword):
		seed, err := parseSeed(line)
		return lineSeed, seed, Route{}, err
	default:
		return lineSkipped, Seed{}, Route{}, nil
	}
}

func parseSeed(line string) (Seed, error) {
	m := seedPattern.FindStringSubmatch(line)
	if m == nil {
		return Seed{}, fmt.Errorf("%w: seed %q", ErrParse, line)
	}
	value, err := atoi(m[1])
	if err != nil {
		return Seed{}, err
	}
	bot, err := atoi(m[2])
	if err != nil {
		return Seed{}, err
	}
	return Seed{Bot: bot, Value: value}, nil
}

func parseRoute(line string) (Route, error) {
	m := routePattern.FindStringSubmatch(line)
	if m == nil {
		return Route{}, fmt.Errorf("%w: routing rule %q", ErrParse, line)
	}
	bot, err := atoi(m[1])
	if err != nil {
		return Route{}, err
	}
	low, err := parseDestination(m[2], m[3])
	if err != nil {
		return Route{}, err
	}
	high, err := parseDestination(m[4], m[5])
	if err != nil {
		return Route{}, err
	}
	return Route{Bot: bot, Low: low, High: high}, nil
}

func parseDestination(kind, id string) (Destination, error) {
	n, err := atoi(id)
	if err != nil {
		return Destination{}, err
	}
	switch DestinationKind(kind) {
	case KindBot:
		return ToBot(n), nil
	case KindOutput:
		return ToOutput(n), nil
	default:
		return Destination{}, fmt.Errorf("%w: unknown target kind %q", ErrParse, kind)
	}
}

// atoi rejects values that overflow int, which the digit-only patterns let through.
func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return n, nil
}
