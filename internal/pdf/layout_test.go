package pdf

import "testing"

func TestParseCuttingLineStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    CuttingLineStyle
		wantErr bool
	}{
		{"", CuttingNone, false},
		{"none", CuttingNone, false},
		{"edge-only", CuttingEdgeOnly, false},
		{"complete", CuttingComplete, false},
		{"diagonal", "", true},
		{"EDGE-ONLY", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCuttingLineStyle(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCuttingLineStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCuttingLineStyle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		cards int
		want  int
	}{
		{1, 2},
		{9, 2},
		{10, 2},
		{11, 4},
		{20, 4},
		{25, 6},
	}
	for _, tt := range tests {
		if got := PageCount(tt.cards); got != tt.want {
			t.Errorf("PageCount(%d) = %d, want %d", tt.cards, got, tt.want)
		}
	}
}

func TestCellOriginMirroring(t *testing.T) {
	// Back pages swap each row's columns so cards line up after a
	// short-edge duplex flip.
	for i := 0; i < cardsPerSheet; i++ {
		row := i / columns
		partner := row*columns + (columns - 1 - i%columns)

		fx, fy := cellOrigin(i, false)
		bx, by := cellOrigin(partner, true)
		if fx != bx || fy != by {
			t.Errorf("cell %d front (%v,%v) does not align with back cell %d (%v,%v)", i, fx, fy, partner, bx, by)
		}
	}

	x, y := cellOrigin(0, false)
	if x != horizontalMargin || y != verticalMargin {
		t.Errorf("cellOrigin(0) = (%v,%v), want margins (%v,%v)", x, y, horizontalMargin, verticalMargin)
	}
}

func TestGuideLines(t *testing.T) {
	if got := guideLines(CuttingNone, 10); got != nil {
		t.Errorf("CuttingNone produced %d lines", len(got))
	}
	if got := guideLines(CuttingComplete, 0); got != nil {
		t.Errorf("empty page produced %d lines", len(got))
	}

	// Three cards occupy two rows: frame only.
	edge := guideLines(CuttingEdgeOnly, 3)
	if len(edge) != 4 {
		t.Fatalf("edge-only: %d lines, want 4", len(edge))
	}
	wantBottom := verticalMargin + 2*cardHeight
	if edge[1].y1 != wantBottom || edge[1].y2 != wantBottom {
		t.Errorf("edge-only bottom at y=%v, want %v", edge[1].y1, wantBottom)
	}

	// Complete: 3 horizontal lines (rows 0..2) plus 3 vertical.
	complete := guideLines(CuttingComplete, 3)
	if len(complete) != 6 {
		t.Fatalf("complete: %d lines, want 6", len(complete))
	}
	var horizontals int
	for _, l := range complete {
		if l.y1 == l.y2 {
			horizontals++
			if l.y1 > wantBottom {
				t.Errorf("horizontal guide at y=%v beyond occupied rows (%v)", l.y1, wantBottom)
			}
		}
	}
	if horizontals != 3 {
		t.Errorf("complete: %d horizontal lines, want 3", horizontals)
	}

	// A full page uses every row.
	full := guideLines(CuttingComplete, 10)
	if len(full) != rows+1+columns+1 {
		t.Errorf("full page: %d lines, want %d", len(full), rows+1+columns+1)
	}
}
