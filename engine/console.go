package engine

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette holds the colors of console tree output.
type Palette struct {
	Key    *color.Color
	Weight *color.Color
	Cycle  *color.Color
}

// DefaultPalette is used by WriteConsole.
var DefaultPalette = Palette{
	Key:    color.New(color.FgBlue),
	Weight: color.New(color.Faint),
	Cycle:  color.New(color.FgRed, color.Bold),
}

// WriteConsole writes an indented rendering of the tree, one node per line in
// pre-order, as
//
//	key (leftCount|rightCount)
//
// with children prefixed by L or R. Nodes reached a second time are printed as
// a CYCLE marker and not expanded. If w is a terminal, lines are clipped to
// its width.
func (t *Tree[N, K]) WriteConsole(w io.Writer) error {
	return t.writeConsole(w, DefaultPalette, consoleWidth(w))
}

type consoleItem[N any] struct {
	n     N
	depth int
	side  string
}

func (t *Tree[N, K]) writeConsole(w io.Writer, pal Palette, width int) error {
	var b strings.Builder
	if absent(t.root) {
		b.WriteString("(empty)\n")
	}
	seen := make(map[N]struct{}, t.count)
	stack := []consoleItem[N]{{n: t.root}}
	for len(stack) > 0 && !absent(t.root) {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		indent := strings.Repeat("  ", top.depth) + top.side
		key := fmt.Sprint(t.cfg.Key(top.n))
		if _, ok := seen[top.n]; ok {
			b.WriteString(indent)
			b.WriteString(pal.Cycle.Sprint(clip("CYCLE "+key, width-len(indent))))
			b.WriteByte('\n')
			continue
		}
		seen[top.n] = struct{}{}
		h := hook(top.n)
		weights := fmt.Sprintf(" (%d|%d)", h.leftCount, h.rightCount)
		b.WriteString(indent)
		if width > 0 && len(indent)+len(key)+len(weights) > width {
			b.WriteString(pal.Key.Sprint(clip(key, width-len(indent))))
		} else {
			b.WriteString(pal.Key.Sprint(key))
			b.WriteString(pal.Weight.Sprint(weights))
		}
		b.WriteByte('\n')
		if !absent(h.right) {
			stack = append(stack, consoleItem[N]{n: h.right, depth: top.depth + 1, side: "R "})
		}
		if !absent(h.left) {
			stack = append(stack, consoleItem[N]{n: h.left, depth: top.depth + 1, side: "L "})
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// consoleWidth returns the width of the terminal w writes to, or 0 if w is
// not a terminal.
func consoleWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		tracer().Debugf("splay: cannot read terminal size: %v", err)
		return 0
	}
	return width
}

// clip shortens s to at most n bytes, marking the cut. The cut never splits a
// UTF-8 sequence. n <= 0 means no limit.
func clip(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	cut := n - 1
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "~"
}
