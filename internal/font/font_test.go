package font

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"epdctl/internal/canvas"
)

func newFB(t *testing.T, w, h int) *canvas.Framebuffer {
	t.Helper()
	fb, err := canvas.New(w, h)
	if err != nil {
		t.Fatalf("canvas.New(%d, %d) failed: %v", w, h, err)
	}
	return fb
}

func planes(fb *canvas.Framebuffer) [2][]byte {
	ink, accent := fb.Planes()
	return [2][]byte{bytes.Clone(ink), bytes.Clone(accent)}
}

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []byte
	}{
		{in: "", want: []byte{}},
		{in: "Hi!", want: []byte("Hi!")},
		{in: "21°C", want: []byte{'2', '1', 127, 'C'}},
		{in: "été", want: []byte{128, 't', 128}},
		{in: "très", want: []byte{'t', 'r', 129, 's'}},
		{in: "a\r\nb", want: []byte("ab")},
		{in: "\tx", want: []byte("?x")},
		{in: "ü", want: []byte("??")},
		{in: "\xc2", want: []byte("?")},
		{in: "~\x7f", want: []byte("~?")},
	} {
		if diff := cmp.Diff(tc.want, Decode(tc.in)); diff != "" {
			t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestByCode(t *testing.T) {
	for code, want := range []*Font{Small, Medium, Large} {
		got, ok := ByCode(code)
		if !ok || got != want {
			t.Errorf("ByCode(%d) = %v, %v", code, got, ok)
		}
	}
	if _, ok := ByCode(3); ok {
		t.Error("ByCode(3) succeeded")
	}
}

func TestGlyphTables(t *testing.T) {
	for _, tc := range []struct {
		f       *Font
		code    byte
		row     int
		want    byte
		comment string
	}{
		{f: Small, code: 'A', row: 0, want: 0x70, comment: ".###."},
		{f: Small, code: 'A', row: 4, want: 0xF8, comment: "#####"},
		{f: Small, code: 'A', row: 7, want: 0x00, comment: "blank bottom row"},
		{f: Medium, code: 'A', row: 1, want: 0x30, comment: "..##.."},
		{f: Medium, code: 'A', row: 6, want: 0xFC, comment: "######"},
		{f: Medium, code: ' ', row: 5, want: 0x00, comment: "space"},
		{f: Large, code: 'A', row: 2, want: 0x10, comment: "...#...."},
		{f: Large, code: 'A', row: 7, want: 0xFE, comment: "#######."},
		{f: Large, code: 127, row: 2, want: 0x6C, comment: "degree ring"},
	} {
		if got := tc.f.Glyph(tc.code)[tc.row]; got != tc.want {
			t.Errorf("%s glyph %#02x row %d = %08b, want %08b (%s)", tc.f.Name, tc.code, tc.row, got, tc.want, tc.comment)
		}
	}
}

func TestLargeAmpersand(t *testing.T) {
	want := []byte{
		0x00, 0x00, 0x38, 0x6C, 0x6C, 0x38, 0x76, 0xDC,
		0xCC, 0xCC, 0xCC, 0x76, 0x00, 0x00, 0x00, 0x00,
	}
	if diff := cmp.Diff(want, Large.Glyph('&')); diff != "" {
		t.Errorf("8x16 '&' rows (-want +got):\n%s", diff)
	}
}

func TestGlyphsFitCell(t *testing.T) {
	for _, f := range []*Font{Small, Medium, Large} {
		spill := byte(0xFF >> f.Width)
		for code := FirstCode; code <= LastCode; code++ {
			g := f.Glyph(byte(code))
			if len(g) != f.Height {
				t.Fatalf("%s glyph %d has %d rows", f.Name, code, len(g))
			}
			for row, bits := range g {
				if bits&spill != 0 {
					t.Errorf("%s glyph %d row %d spills past width %d: %08b", f.Name, code, row, f.Width, bits)
				}
			}
		}
		for _, code := range []byte{'?', 127, 128, 129} {
			if bytes.Equal(f.Glyph(code), f.Glyph(' ')) {
				t.Errorf("%s glyph %d is blank", f.Name, code)
			}
		}
	}
}

func TestUnknownCodeUsesQuestionMark(t *testing.T) {
	for _, f := range []*Font{Small, Medium, Large} {
		if !bytes.Equal(f.Glyph(5), f.Glyph('?')) || !bytes.Equal(f.Glyph(200), f.Glyph('?')) {
			t.Errorf("%s: out of range codes should render '?'", f.Name)
		}
	}
}

func TestDrawTextEmpty(t *testing.T) {
	fb := newFB(t, 32, 32)
	fb.FillRect(4, 4, 9, 9, canvas.Accent)
	before := planes(fb)
	for _, f := range []*Font{Small, Medium, Large} {
		if end := f.DrawText(fb, 3, 3, "", canvas.Black, 2); end != 3 {
			t.Errorf("%s: DrawText(\"\") returned %d, want 3", f.Name, end)
		}
		f.DrawText(fb, 3, 3, "\r\n", canvas.Black, 1)
	}
	if diff := cmp.Diff(before, planes(fb)); diff != "" {
		t.Errorf("planes changed (-want +got):\n%s", diff)
	}
}

func TestDrawTextA(t *testing.T) {
	const x, y = 3, 5
	for _, f := range []*Font{Small, Medium, Large} {
		t.Run(f.Name, func(t *testing.T) {
			got := newFB(t, 40, 40)
			f.DrawText(got, x, y, "A", canvas.Black, 1)

			want := newFB(t, 40, 40)
			for row := 0; row < f.Height; row++ {
				for col := 0; col < f.Width; col++ {
					if f.Set('A', col, row) {
						want.SetPixel(x+col, y+row, canvas.Black)
					}
				}
			}
			if diff := cmp.Diff(planes(want), planes(got)); diff != "" {
				t.Errorf("planes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawTextScale(t *testing.T) {
	fb := newFB(t, 64, 64)
	end := Small.DrawText(fb, 0, 0, "AB", canvas.Accent, 3)
	if end != 2*Small.Advance*3 {
		t.Errorf("end = %d, want %d", end, 2*Small.Advance*3)
	}
	for row := 0; row < Small.Height; row++ {
		for col := 0; col < Small.Width; col++ {
			want := canvas.White
			if Small.Set('A', col, row) {
				want = canvas.Accent
			}
			for dy := 0; dy < 3; dy++ {
				for dx := 0; dx < 3; dx++ {
					if got := fb.Pixel(col*3+dx, row*3+dy); got != want {
						t.Fatalf("pixel (%d,%d) = %v, want %v", col*3+dx, row*3+dy, got, want)
					}
				}
			}
		}
	}
	if w, h := Small.Measure("AB", 3); w != 36 || h != 24 {
		t.Errorf("Measure = %dx%d, want 36x24", w, h)
	}
	if w, h := Small.Measure("\n", 1); w != 0 || h != 0 {
		t.Errorf("Measure(newline) = %dx%d, want 0x0", w, h)
	}
}

func TestDrawTextRotated(t *testing.T) {
	// The logical view is identical in every orientation.
	ref := newFB(t, 48, 48)
	Large.DrawText(ref, 2, 4, "Hé", canvas.Black, 1)

	for _, o := range []canvas.Orientation{canvas.Rotate90, canvas.Rotate180, canvas.Rotate270} {
		t.Run(o.String(), func(t *testing.T) {
			fb := newFB(t, 48, 48)
			fb.SetOrientation(o)
			Large.DrawText(fb, 2, 4, "Hé", canvas.Black, 1)
			for y := 0; y < 48; y++ {
				for x := 0; x < 48; x++ {
					if got, want := fb.At(x, y), ref.Pixel(x, y); got != want {
						t.Fatalf("logical (%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestAdvanceDirection(t *testing.T) {
	// The physical offset between the same glyph drawn one cell apart.
	for _, tc := range []struct {
		o      canvas.Orientation
		dx, dy int // physical step from first to second glyph
	}{
		{o: canvas.Rotate0, dx: 8},
		{o: canvas.Rotate90, dy: 8},
		{o: canvas.Rotate180, dx: -8},
		{o: canvas.Rotate270, dy: -8},
	} {
		fb := newFB(t, 64, 64)
		fb.SetOrientation(tc.o)
		Large.DrawChar(fb, 10, 10, '.', canvas.Black, 1)
		first := inked(fb)
		fb.Clear()
		Large.DrawText(fb, 10, 10, " .", canvas.Black, 1)
		second := inked(fb)
		if len(first) == 0 || len(first) != len(second) {
			t.Fatalf("%v: inked %d then %d pixels", tc.o, len(first), len(second))
		}
		for i := range first {
			if second[i].X-first[i].X != tc.dx || second[i].Y-first[i].Y != tc.dy {
				t.Errorf("%v: step = (%d,%d), want (%d,%d)", tc.o,
					second[i].X-first[i].X, second[i].Y-first[i].Y, tc.dx, tc.dy)
				break
			}
		}
	}
}

type point struct{ X, Y int }

func inked(fb *canvas.Framebuffer) []point {
	var pts []point
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.Pixel(x, y) != canvas.White {
				pts = append(pts, point{x, y})
			}
		}
	}
	return pts
}
