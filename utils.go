package poissondisk

import (
	"fmt"
	"strconv"

	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// fmtCoord2D formats c as (x, y)
func fmtCoord2D(c model2d.Coord) string {
	return fmt.Sprintf("(%s, %s)", fmtFloat(c.X), fmtFloat(c.Y))
}

// fmtCoord3D formats c as (x, y, z)
func fmtCoord3D(c model3d.Coord3D) string {
	return fmt.Sprintf("(%s, %s, %s)", fmtFloat(c.X), fmtFloat(c.Y), fmtFloat(c.Z))
}

// fmtFloat is the shortest repr that reads back as the same float
func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
