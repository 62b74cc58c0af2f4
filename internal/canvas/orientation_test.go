package canvas

import (
	"image"
	"testing"
)

func TestTransformCorners(t *testing.T) {
	const w, h = 152, 296
	for _, tc := range []struct {
		o      Orientation
		in     image.Point
		want   image.Point
		logicW int
		logicH int
	}{
		{o: Rotate0, in: image.Pt(0, 0), want: image.Pt(0, 0), logicW: w, logicH: h},
		{o: Rotate0, in: image.Pt(151, 295), want: image.Pt(151, 295), logicW: w, logicH: h},
		{o: Rotate90, in: image.Pt(0, 0), want: image.Pt(151, 0), logicW: h, logicH: w},
		{o: Rotate90, in: image.Pt(295, 151), want: image.Pt(0, 295), logicW: h, logicH: w},
		{o: Rotate180, in: image.Pt(0, 0), want: image.Pt(151, 295), logicW: w, logicH: h},
		{o: Rotate180, in: image.Pt(10, 20), want: image.Pt(141, 275), logicW: w, logicH: h},
		{o: Rotate270, in: image.Pt(0, 0), want: image.Pt(0, 295), logicW: h, logicH: w},
		{o: Rotate270, in: image.Pt(295, 151), want: image.Pt(151, 0), logicW: h, logicH: w},
	} {
		lw, lh := tc.o.LogicalSize(w, h)
		if lw != tc.logicW || lh != tc.logicH {
			t.Errorf("%v LogicalSize = %dx%d, want %dx%d", tc.o, lw, lh, tc.logicW, tc.logicH)
		}
		x, y := tc.o.Transform(tc.in.X, tc.in.Y, w, h)
		if got := image.Pt(x, y); got != tc.want {
			t.Errorf("%v Transform%v = %v, want %v", tc.o, tc.in, got, tc.want)
		}
	}
}

func TestTransformBijection(t *testing.T) {
	for _, dims := range [][2]int{{16, 16}, {13, 7}, {8, 21}} {
		w, h := dims[0], dims[1]
		for _, o := range []Orientation{Rotate0, Rotate90, Rotate180, Rotate270} {
			lw, lh := o.LogicalSize(w, h)
			seen := make(map[image.Point]bool, w*h)
			for y := 0; y < lh; y++ {
				for x := 0; x < lw; x++ {
					px, py := o.Transform(x, y, w, h)
					if px < 0 || py < 0 || px >= w || py >= h {
						t.Fatalf("%dx%d %v: (%d,%d) -> (%d,%d) out of range", w, h, o, x, y, px, py)
					}
					p := image.Pt(px, py)
					if seen[p] {
						t.Fatalf("%dx%d %v: %v hit twice", w, h, o, p)
					}
					seen[p] = true
					if ix, iy := o.Inverse(px, py, w, h); ix != x || iy != y {
						t.Fatalf("%dx%d %v: Inverse(%d,%d) = (%d,%d), want (%d,%d)", w, h, o, px, py, ix, iy, x, y)
					}
				}
			}
			if len(seen) != w*h {
				t.Errorf("%dx%d %v: covered %d of %d pixels", w, h, o, len(seen), w*h)
			}
		}
	}
}

func TestQuarterTurnsCompose(t *testing.T) {
	// Four successive quarter turns bring every point back to itself.
	const n = 12
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			px, py := x, y
			for i := 0; i < 4; i++ {
				px, py = Rotate90.Transform(px, py, n, n)
			}
			if px != x || py != y {
				t.Fatalf("four quarter turns moved (%d,%d) to (%d,%d)", x, y, px, py)
			}
		}
	}
	// 90° applied twice equals 180°, three times equals 270°.
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			ax, ay := Rotate90.Transform(x, y, n, n)
			ax, ay = Rotate90.Transform(ax, ay, n, n)
			bx, by := Rotate180.Transform(x, y, n, n)
			if ax != bx || ay != by {
				t.Fatalf("90°∘90° (%d,%d) = (%d,%d), 180° = (%d,%d)", x, y, ax, ay, bx, by)
			}
			ax, ay = Rotate90.Transform(ax, ay, n, n)
			cx, cy := Rotate270.Transform(x, y, n, n)
			if ax != cx || ay != cy {
				t.Fatalf("90°∘90°∘90° (%d,%d) = (%d,%d), 270° = (%d,%d)", x, y, ax, ay, cx, cy)
			}
		}
	}
}

func TestParseOrientation(t *testing.T) {
	for v := 0; v <= 3; v++ {
		o, err := ParseOrientation(v)
		if err != nil || int(o) != v {
			t.Errorf("ParseOrientation(%d) = %v, %v", v, o, err)
		}
		if o.Degrees() != v*90 {
			t.Errorf("%v.Degrees() = %d", o, o.Degrees())
		}
	}
	for _, v := range []int{-1, 4, 90} {
		if _, err := ParseOrientation(v); err == nil {
			t.Errorf("ParseOrientation(%d) succeeded", v)
		}
	}
}
