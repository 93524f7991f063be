package pdftext

import (
	"sort"
	"strings"
)

// Option adjusts how positioned text is assembled into lines.
type Option func(*layoutConfig)

type layoutConfig struct {
	XTolerance float64
	YTolerance float64
}

func defaultLayout() layoutConfig {
	return layoutConfig{
		XTolerance: 3.0,
		YTolerance: 3.0,
	}
}

// WithXTolerance sets the horizontal gap, in points, above which two
// runs on the same line are separated by a space.
func WithXTolerance(tolerance float64) Option {
	return func(c *layoutConfig) {
		c.XTolerance = tolerance
	}
}

// WithYTolerance sets the vertical distance, in points, within which
// two runs are considered part of the same line.
func WithYTolerance(tolerance float64) Option {
	return func(c *layoutConfig) {
		c.YTolerance = tolerance
	}
}

// fragment is one positioned run of text from a page content stream.
type fragment struct {
	text string
	x, y float64 // baseline origin in PDF coordinates
	w    float64 // advance width
}

// assembleLines orders fragments into reading order and joins them into
// newline-separated lines. Fragments whose baselines differ by no more
// than the vertical tolerance share a line.
func assembleLines(frags []fragment, opts ...Option) string {
	if len(frags) == 0 {
		return ""
	}

	config := defaultLayout()
	for _, opt := range opts {
		opt(&config)
	}

	sorted := make([]fragment, len(frags))
	copy(sorted, frags)

	sort.SliceStable(sorted, func(i, j int) bool {
		// First sort by Y position (top to bottom)
		if abs(sorted[i].y-sorted[j].y) > config.YTolerance {
			return sorted[i].y > sorted[j].y // PDF coordinates: Y increases upward
		}
		// Then sort by X position (left to right)
		return sorted[i].x < sorted[j].x
	})

	// Group fragments into lines
	var lines [][]fragment
	var currentLine []fragment
	currentY := sorted[0].y

	for _, f := range sorted {
		if abs(f.y-currentY) > config.YTolerance {
			if len(currentLine) > 0 {
				lines = append(lines, currentLine)
			}
			currentLine = []fragment{f}
			currentY = f.y
		} else {
			currentLine = append(currentLine, f)
		}
	}
	if len(currentLine) > 0 {
		lines = append(lines, currentLine)
	}

	var result strings.Builder
	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(joinLine(line, config.XTolerance))
	}
	return result.String()
}

// joinLine concatenates one line's fragments left to right, inserting a
// space wherever the gap between runs exceeds the tolerance.
func joinLine(line []fragment, xTolerance float64) string {
	var b strings.Builder
	var lastEnd float64

	for i, f := range line {
		if i > 0 {
			gap := f.x - lastEnd
			if gap > xTolerance {
				b.WriteString(" ")
			}
		}
		b.WriteString(f.text)
		lastEnd = f.x + f.w
	}

	return strings.TrimRight(b.String(), " \t")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
