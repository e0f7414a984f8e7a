package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bft-labs/shopcart/pkg/cart"
)

// Command is one requested mutation.
type Command struct {
	Op    cart.Op
	Index int
}

func (c Command) String() string {
	return fmt.Sprintf("%s %d", c.Op, c.Index)
}

var opWords = map[string]cart.Op{
	"+":        cart.OpIncrement,
	"inc":      cart.OpIncrement,
	"increase": cart.OpIncrement,
	"-":        cart.OpDecrement,
	"dec":      cart.OpDecrement,
	"decrease": cart.OpDecrement,
}

// ParseCommand parses "<op> <index>", where op is one of + inc increase
// - dec decrease. Blank lines and lines starting with # yield ErrSkip.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, ErrSkip
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}

	op, ok := opWords[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	idx, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrBadIndex, fields[1])
	}

	return Command{Op: op, Index: idx}, nil
}
