package poissondisk

import (
	"image"
	"image/color"
	"testing"

	"github.com/unixpickle/model3d/model2d"
)

func TestMaskContains(t *testing.T) {
	// 3x2 image, only pixels (0,0) & (2,1) are set
	im := image.NewAlpha(image.Rect(0, 0, 3, 2))
	im.SetAlpha(0, 0, color.Alpha{A: 255})
	im.SetAlpha(2, 1, color.Alpha{A: 1})

	m, err := NewMask(im, model2d.Coord{X: 10, Y: 10}, 2)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		point  model2d.Coord
		expect bool
	}{
		{"first pixel corner", model2d.Coord{X: 10, Y: 10}, true},
		{"first pixel middle", model2d.Coord{X: 11, Y: 11}, true},
		{"unset pixel", model2d.Coord{X: 12.5, Y: 11}, false},
		{"last pixel", model2d.Coord{X: 15.9, Y: 13.9}, true},
		{"past the image", model2d.Coord{X: 16, Y: 13}, false},
		{"before origin", model2d.Coord{X: 9.9, Y: 10}, false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Contains(tt.point); got != tt.expect {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.expect)
			}
		})
	}

	if m.Size() != (model2d.Coord{X: 6, Y: 4}) {
		t.Errorf("unexpected size %v", m.Size())
	}
	if m.String() != "Mask(origin (10, 10) | cell 2 | pixels 3x2 | set 2)" {
		t.Errorf("unexpected description %q", m.String())
	}
}

func TestMaskNonZeroImageBounds(t *testing.T) {
	im := image.NewAlpha(image.Rect(5, 5, 7, 7))
	im.SetAlpha(6, 6, color.Alpha{A: 255})

	m, err := NewMask(im, model2d.Coord{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Contains(model2d.Coord{X: 1.5, Y: 1.5}) {
		t.Error("pixel (6,6) should map to (1,1) relative to the image bounds")
	}
	if m.Contains(model2d.Coord{X: 0.5, Y: 0.5}) {
		t.Error("pixel (5,5) is unset")
	}
}

func TestSampleInMask(t *testing.T) {
	im := image.NewAlpha(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if x < 20 || y < 20 { // L shape
				im.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	m, err := NewMask(im, model2d.Coord{}, 1)
	if err != nil {
		t.Fatal(err)
	}

	points, err := newTestSampler2D(t, 4).Sample(&Parameters2D{
		Amount:        40,
		MinDistance:   3,
		Region:        m,
		StartPosition: model2d.Coord{X: 5, Y: 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range points {
		if p.X >= 20 && p.Y >= 20 {
			t.Errorf("point %d %v in the cut out corner", i, p)
		}
	}
}
