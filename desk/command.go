package desk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Op names a pencil operation.
type Op uint8

const (
	OpWrite Op = iota + 1
	OpErase
	OpEdit
	OpSharpen
)

func (o Op) String() string {
	switch o {
	case OpWrite:
		return "write"
	case OpErase:
		return "erase"
	case OpEdit:
		return "edit"
	case OpSharpen:
		return "sharpen"
	default:
		return "unknown"
	}
}

// Command is one parsed prompt line.
type Command struct {
	Op    Op
	Text  string
	Index int
}

var (
	ErrEmptyCommand    = errors.New("empty command")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrBadIndex        = errors.New("bad index")
)

// ParseCommand parses a prompt line:
//
//	write <text>          (w)
//	erase <text>          (e)
//	edit <index> <text>   (x)
//	sharpen               (s)
//
// Text runs from the single space after the command word (or index) to the
// end of the line, so leading and trailing spaces in it are kept.
func ParseCommand(line string) (Command, error) {
	word, rest, _ := strings.Cut(line, " ")
	switch word {
	case "":
		return Command{}, ErrEmptyCommand
	case "write", "w":
		if rest == "" {
			return Command{}, fmt.Errorf("%s: %w: text", word, ErrMissingArgument)
		}
		return Command{Op: OpWrite, Text: rest}, nil
	case "erase", "e":
		if rest == "" {
			return Command{}, fmt.Errorf("%s: %w: text", word, ErrMissingArgument)
		}
		return Command{Op: OpErase, Text: rest}, nil
	case "edit", "x":
		idx, text, ok := strings.Cut(rest, " ")
		if idx == "" {
			return Command{}, fmt.Errorf("%s: %w: index", word, ErrMissingArgument)
		}
		n, err := strconv.Atoi(idx)
		if err != nil {
			return Command{}, fmt.Errorf("%s: %w: %q", word, ErrBadIndex, idx)
		}
		if !ok || text == "" {
			return Command{}, fmt.Errorf("%s: %w: text", word, ErrMissingArgument)
		}
		return Command{Op: OpEdit, Index: n, Text: text}, nil
	case "sharpen", "s":
		return Command{Op: OpSharpen}, nil
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, word)
	}
}
