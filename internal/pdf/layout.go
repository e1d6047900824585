package pdf

import "fmt"

// Sheet geometry. Ten cards tile one A4 page, and the grid is centered
// by construction.
const (
	cardWidth  = 85.0 // mm
	cardHeight = 55.0 // mm

	columns       = 2
	rows          = 5
	cardsPerSheet = columns * rows

	pageWidth  = 210.0 // mm, ISO A4
	pageHeight = 297.0

	horizontalMargin = (pageWidth - columns*cardWidth) / 2  // 20mm
	verticalMargin   = (pageHeight - rows*cardHeight) / 2   // 11mm

	// Cutting guides reach past the card edges so the lines stay
	// visible while cutting.
	guideExtension = 3.0 // mm
)

// CuttingLineStyle selects the cutting-guide overlay for export pages.
type CuttingLineStyle string

const (
	CuttingNone     CuttingLineStyle = "none"
	CuttingEdgeOnly CuttingLineStyle = "edge-only"
	CuttingComplete CuttingLineStyle = "complete"
)

// ParseCuttingLineStyle validates a request value. Empty input means
// CuttingNone.
func ParseCuttingLineStyle(s string) (CuttingLineStyle, error) {
	switch CuttingLineStyle(s) {
	case "", CuttingNone:
		return CuttingNone, nil
	case CuttingEdgeOnly:
		return CuttingEdgeOnly, nil
	case CuttingComplete:
		return CuttingComplete, nil
	}
	return "", fmt.Errorf("unknown cutting line style %q", s)
}

// SheetCount returns the number of physical sheets for cardCount cards.
func SheetCount(cardCount int) int {
	return (cardCount + cardsPerSheet - 1) / cardsPerSheet
}

// PageCount returns the number of PDF pages: each sheet has a front and
// a back page.
func PageCount(cardCount int) int {
	return SheetCount(cardCount) * 2
}

// cellOrigin returns the top-left corner of grid cell i on a page.
// Cells are row-major; on back pages each row's column order is
// reversed so fronts and backs line up after a short-edge duplex flip.
func cellOrigin(i int, mirrored bool) (x, y float64) {
	col := i % columns
	row := i / columns
	if mirrored {
		col = columns - 1 - col
	}
	return horizontalMargin + float64(col)*cardWidth, verticalMargin + float64(row)*cardHeight
}

type guideLine struct {
	x1, y1, x2, y2 float64
}

// guideLines computes the cutting-guide segments for a page holding
// cardCount cards. Guides cover only rows that hold cards; fully empty
// rows get none.
func guideLines(style CuttingLineStyle, cardCount int) []guideLine {
	if style == CuttingNone || cardCount <= 0 {
		return nil
	}

	occupiedRows := (cardCount + columns - 1) / columns
	left := horizontalMargin
	right := horizontalMargin + columns*cardWidth
	top := verticalMargin
	bottom := verticalMargin + float64(occupiedRows)*cardHeight

	var lines []guideLine
	switch style {
	case CuttingEdgeOnly:
		lines = append(lines,
			guideLine{left - guideExtension, top, right + guideExtension, top},
			guideLine{left - guideExtension, bottom, right + guideExtension, bottom},
			guideLine{left, top - guideExtension, left, bottom + guideExtension},
			guideLine{right, top - guideExtension, right, bottom + guideExtension},
		)
	case CuttingComplete:
		for r := 0; r <= occupiedRows; r++ {
			y := top + float64(r)*cardHeight
			lines = append(lines, guideLine{left - guideExtension, y, right + guideExtension, y})
		}
		for c := 0; c <= columns; c++ {
			x := left + float64(c)*cardWidth
			lines = append(lines, guideLine{x, top - guideExtension, x, bottom + guideExtension})
		}
	}
	return lines
}
