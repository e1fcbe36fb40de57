package core

import (
	"fmt"
	"strings"
)

// Frame is one sprite pose: a grid of color tokens indexed [row][column].
type Frame [][]Color

// ParseFrame builds a Frame from rows of pixel-art tokens (see ParseColorToken).
// All rows must have the same width.
func ParseFrame(rows []string) (Frame, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("frame has no rows")
	}

	width := len([]rune(rows[0]))
	f := make(Frame, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, len(runes), width)
		}
		f[y] = make([]Color, width)
		for x, r := range runes {
			c, ok := ParseColorToken(r)
			if !ok {
				return nil, fmt.Errorf("row %d: unknown color token %q", y, r)
			}
			f[y][x] = c
		}
	}
	return f, nil
}

// Width returns the number of columns.
func (f Frame) Width() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// Height returns the number of rows.
func (f Frame) Height() int {
	return len(f)
}

// Empty reports whether every token is transparent.
func (f Frame) Empty() bool {
	for _, row := range f {
		for _, c := range row {
			if c != ColorClear {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent deep copy of the frame.
func (f Frame) Clone() Frame {
	if f == nil {
		return nil
	}
	out := make(Frame, len(f))
	for y, row := range f {
		out[y] = make([]Color, len(row))
		copy(out[y], row)
	}
	return out
}

// Recolor returns a copy with the palette applied. The receiver is not modified.
func (f Frame) Recolor(p Palette) Frame {
	if len(p) == 0 {
		return f.Clone()
	}
	out := make(Frame, len(f))
	for y, row := range f {
		out[y] = make([]Color, len(row))
		for x, c := range row {
			if c == ColorClear {
				continue
			}
			out[y][x] = p.Map(c)
		}
	}
	return out
}

// String renders the frame back into pixel-art tokens, mainly for tests and
// debug output.
func (f Frame) String() string {
	reverse := make(map[Color]rune, len(tokenColors))
	for r, c := range tokenColors {
		reverse[c] = r
	}

	var sb strings.Builder
	for y, row := range f {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, c := range row {
			sb.WriteRune(reverse[c])
		}
	}
	return sb.String()
}

// CloneFrames deep-copies a frame slice.
func CloneFrames(frames []Frame) []Frame {
	out := make([]Frame, len(frames))
	for i, f := range frames {
		out[i] = f.Clone()
	}
	return out
}

// Renderer is the rendering sink. The simulation only calls Draw; it never
// touches pixels itself.
type Renderer interface {
	Draw(origin GameLocation, frame Frame)
}
