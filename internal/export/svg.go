package export

import (
	"fmt"
	"os"
	"strings"
)

// SeriesToSVG renders one day-indexed series as an SVG polyline on a dark
// background, matching the terminal chart aesthetic.
func SeriesToSVG(series []float64, title string, width, height int, strokeColor string) string {
	if len(series) < 2 {
		return ""
	}

	minY, maxY := series[0], series[0]
	for _, v := range series {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<text x="8" y="16" fill="#aaaaaa" font-family="monospace" font-size="12">%s</text>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, title, strokeColor))

	denom := float64(len(series) - 1)
	for i, v := range series {
		x := float64(i) / denom * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// SVGFile writes a single-series SVG chart to the named file.
func SVGFile(path string, series []float64, title string) error {
	svg := SeriesToSVG(series, title, 800, 400, "#00ff00")
	if svg == "" {
		return fmt.Errorf("not enough samples to chart %q", title)
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
