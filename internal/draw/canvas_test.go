package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestCanvas_FillRectRender(t *testing.T) {
	// 1:1 mapping: 4 columns, 2 rows = 4 sub-pixel rows.
	c := NewScaledCanvas(4, 2, 4, 4)
	c.FillRect(1, 0, 2, 1)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	for _, want := range []string{"\033[1;2H▀", "\033[1;3H▀", "\033[1;1H ", "\033[2;4H "} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
}

func TestCanvas_RenderOnlyChanges(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.FillRect(0, 0, 4, 4)

	var buf bytes.Buffer
	c.Render(&buf)
	if buf.Len() == 0 {
		t.Fatal("first render wrote nothing")
	}

	buf.Reset()
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Errorf("unchanged frame wrote %q", buf.String())
	}

	c.MarkTextDirty(2, 1, 1)
	buf.Reset()
	c.Render(&buf)
	if got, want := buf.String(), "\033[1;2H█"; got != want {
		t.Errorf("got %q - want %q", got, want)
	}

	c.ForceRedraw()
	buf.Reset()
	c.Render(&buf)
	if got := strings.Count(buf.String(), "█"); got != 8 {
		t.Errorf("forced redraw wrote %d cells, want 8", got)
	}
}

func TestCanvas_Offset(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetOffset(3, 5)
	c.FillRect(0, 0, 1, 2)

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[6;4H█") {
		t.Errorf("offset not applied: %q", buf.String())
	}
}

func TestCanvas_Scaling(t *testing.T) {
	c := NewScaledCanvas(120, 40, 1200, 800)

	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 1, 1},
		{600, 400, 61, 21},
		{1190, 790, 120, 40},
	}
	for _, test := range tests {
		col, row := c.LogicalToTerminal(test.x, test.y)
		if col != test.col || row != test.row {
			t.Errorf("LogicalToTerminal(%v,%v) got (%d,%d) - want (%d,%d)", test.x, test.y, col, row, test.col, test.row)
		}
	}
}

func TestCanvas_DrawOutsideIgnored(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.FillRect(-10, -10, 5, 5)
	c.SetFloat(100, 100)
	c.DrawLine(Point{-5, 1}, Point{10, 1})
	c.DrawPolygon([]Point{{-1, -1}, {9, -1}, {9, 9}}, true)
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{80, 24, 80, 24, 0, 0},
		{160, 50, 160, 50, 0, 0},
		{200, 60, 160, 50, 20, 5},
		{100, 70, 100, 50, 0, 10},
	}
	for _, test := range tests {
		rw, rh, oc, or := ClampTermSize(test.w, test.h)
		if rw != test.rw || rh != test.rh || oc != test.offCol || or != test.offRow {
			t.Errorf("ClampTermSize(%d,%d) got (%d,%d,%d,%d) - want (%d,%d,%d,%d)",
				test.w, test.h, rw, rh, oc, or, test.rw, test.rh, test.offCol, test.offRow)
		}
	}
}
