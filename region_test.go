package poissondisk

import (
	"image"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

func TestCubeContains(t *testing.T) {
	cube := mustCube(t, model3d.Coord3D{}, model3d.XYZ(10, 20, 5))

	cases := []struct {
		point  model3d.Coord3D
		expect bool
	}{
		{model3d.XYZ(0, 20, 5), true},
		{model3d.XYZ(5, 10, 2.5), true},
		{model3d.XYZ(0, 0, 0), true},
		{model3d.XYZ(10.001, 0, 0), false},
		{model3d.XYZ(-0.001, 0, 0), false},
		{model3d.XYZ(0, 20.001, 0), false},
		{model3d.XYZ(0, 0, 5.001), false},
	}
	for _, tt := range cases {
		if got := cube.Contains(tt.point); got != tt.expect {
			t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.expect)
		}
	}
}

func TestCubeOffsetOrigin(t *testing.T) {
	cube := mustCube(t, model3d.XYZ(-1, 2, 3), model3d.XYZ(1, 1, 1))
	if !cube.Contains(model3d.XYZ(-0.5, 2.5, 3.5)) {
		t.Error("expected centre of cube to be inside")
	}
	if cube.Contains(model3d.XYZ(0.5, 2.5, 3.5)) {
		t.Error("expected point past the far face to be outside")
	}
}

func TestSphereContains(t *testing.T) {
	ball, err := NewSphere(model3d.Coord3D{}, 10)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		point  model3d.Coord3D
		expect bool
	}{
		{model3d.XYZ(0, 0, 10), true},
		{model3d.XYZ(5, 5, 5), true},
		{model3d.XYZ(0, 0, 10.001), false},
		{model3d.XYZ(-10, 0, 0), true},
		{model3d.XYZ(7.1, 7.1, 0), false},
	}
	for _, tt := range cases {
		if got := ball.Contains(tt.point); got != tt.expect {
			t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.expect)
		}
	}
}

func TestRectangleContains(t *testing.T) {
	rect := mustRectangle(t, model2d.Coord{}, model2d.Coord{X: 10, Y: 20})

	cases := []struct {
		point  model2d.Coord
		expect bool
	}{
		{model2d.Coord{X: 0, Y: 20}, true},
		{model2d.Coord{X: 5, Y: 10}, true},
		{model2d.Coord{X: 10.001, Y: 0}, false},
		{model2d.Coord{X: -0.001, Y: 0}, false},
		{model2d.Coord{X: 0, Y: 20.001}, false},
	}
	for _, tt := range cases {
		if got := rect.Contains(tt.point); got != tt.expect {
			t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.expect)
		}
	}

	moved := mustRectangle(t, model2d.Coord{X: 5, Y: 5}, model2d.Coord{X: 1, Y: 1})
	if !moved.Contains(model2d.Coord{X: 6, Y: 6}) || moved.Contains(model2d.Coord{X: 4.9, Y: 5}) {
		t.Error("rectangle should be relative to it's origin")
	}
}

func TestCircleContains(t *testing.T) {
	c, err := NewCircle(model2d.Coord{X: 1, Y: 1}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Contains(model2d.Coord{X: 3, Y: 1}) {
		t.Error("point on the edge should be inside")
	}
	if c.Contains(model2d.Coord{X: 3, Y: 3}) {
		t.Error("point beyond the radius should be outside")
	}
}

func TestInvalidRegions(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name  string
		build func() error
	}{
		{"rectangle negative x", func() error {
			_, err := NewRectangle(model2d.Coord{}, model2d.Coord{X: -1, Y: 1})
			return err
		}},
		{"rectangle negative y", func() error {
			_, err := NewBounds2D(model2d.Coord{X: 1, Y: -1})
			return err
		}},
		{"circle negative radius", func() error {
			_, err := NewCircle(model2d.Coord{}, -1)
			return err
		}},
		{"polygon too few vertices", func() error {
			_, err := NewPolygon(model2d.Coord{}, model2d.Coord{X: 1})
			return err
		}},
		{"cube negative z", func() error {
			_, err := NewCube(model3d.Coord3D{}, model3d.XYZ(1, 1, -0.1))
			return err
		}},
		{"raw bounds negative", func() error {
			_, err := NewBounds3D(model3d.XYZ(-10, 20, 5))
			return err
		}},
		{"cube nan", func() error {
			_, err := NewCube(model3d.Coord3D{}, model3d.XYZ(nan, 1, 1))
			return err
		}},
		{"sphere negative radius", func() error {
			_, err := NewSphere(model3d.Coord3D{}, -0.5)
			return err
		}},
		{"mask zero cell size", func() error {
			_, err := NewMask(image.NewAlpha(image.Rect(0, 0, 2, 2)), model2d.Coord{}, 0)
			return err
		}},
		{"mask empty image", func() error {
			_, err := NewMask(image.NewAlpha(image.Rectangle{}), model2d.Coord{}, 1)
			return err
		}},
		{"mask nil image", func() error {
			_, err := NewMask(nil, model2d.Coord{}, 1)
			return err
		}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if !errors.Is(err, ErrInvalidRegion) {
				t.Errorf("expected ErrInvalidRegion, got %v", err)
			}
		})
	}
}

func TestRegionStrings(t *testing.T) {
	ball, _ := NewSphere(model3d.XYZ(1, 2, 3), 4.5)
	circle, _ := NewCircle(model2d.Coord{X: -1, Y: 0.5}, 2)
	tri, _ := NewPolygon(model2d.Coord{}, model2d.Coord{X: 4}, model2d.Coord{Y: 3})

	cases := []struct {
		region interface{ String() string }
		expect string
	}{
		{mustCube(t, model3d.Coord3D{}, model3d.XYZ(10, 20, 5)), "Cube(origin (0, 0, 0) | size (10, 20, 5))"},
		{ball, "Sphere(center (1, 2, 3) | radius 4.5)"},
		{mustRectangle(t, model2d.Coord{X: 1}, model2d.Coord{X: 2, Y: 3}), "Rectangle(origin (1, 0) | size (2, 3))"},
		{circle, "Circle(center (-1, 0.5) | radius 2)"},
		{tri, "Polygon(vertices 3 | bounds (0, 0)-(4, 3))"},
	}
	for _, tt := range cases {
		if got := tt.region.String(); got != tt.expect {
			t.Errorf("String() = %q, want %q", got, tt.expect)
		}
	}
}
