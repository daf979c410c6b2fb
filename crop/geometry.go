package crop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Geometry is an unresolved crop request. W or H of zero extends the crop
// to the input's edge on that axis.
type Geometry struct {
	X, Y, W, H int
}

// String formats the geometry as x:y:w:h.
func (g Geometry) String() string {
	return fmt.Sprintf("%d:%d:%d:%d", g.X, g.Y, g.W, g.H)
}

// ParseGeometry parses "x:y:w:h". Trailing fields may be omitted and stay
// zero; an empty string is the full-frame geometry. Fields that are not
// base-10 integers, or more than four fields, are rejected with
// ErrInvalidArgument.
func ParseGeometry(s string) (Geometry, error) {
	var g Geometry
	s = strings.TrimSpace(s)
	if s == "" {
		return g, nil
	}

	fields := strings.Split(s, ":")
	if len(fields) > 4 {
		return Geometry{}, fmt.Errorf("%w: %q has %d fields, want at most 4", ErrInvalidArgument, s, len(fields))
	}
	dst := [4]*int{&g.X, &g.Y, &g.W, &g.H}
	for i, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Geometry{}, fmt.Errorf("%w: field %d of %q: %v", ErrInvalidArgument, i, s, err)
		}
		*dst[i] = v
	}
	return g, nil
}

// ParseGeometryLenient parses like ParseGeometry but never fails: malformed
// text yields the zero geometry, which resolves to a full-frame crop.
func ParseGeometryLenient(s string) Geometry {
	g, err := ParseGeometry(s)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "ParseGeometryLenient",
			"argument": s,
			"error":    err.Error(),
		}).Warn("Ignoring malformed crop geometry")
		return Geometry{}
	}
	return g
}

// Rect is a resolved crop area in input pixel coordinates.
type Rect struct {
	X, Y, W, H int
}

// String formats the rectangle as x:y:w:h.
func (r Rect) String() string {
	return fmt.Sprintf("%d:%d:%d:%d", r.X, r.Y, r.W, r.H)
}

// Resolve turns a request into a crop area for an input of inW x inH pixels
// whose chroma planes are subsampled by 2^hsub horizontally and 2^vsub
// vertically.
//
// Zero W or H extend to the input's edge from the requested X or Y. X and Y
// are then aligned down to the chroma grid so every plane starts on a whole
// sample. The result must lie inside the input and be non-empty; otherwise
// an error wrapping ErrInvalidGeometry is returned.
func Resolve(g Geometry, inW, inH, hsub, vsub int) (Rect, error) {
	return resolve(logrus.StandardLogger(), g, inW, inH, hsub, vsub)
}

func resolve(log logrus.FieldLogger, g Geometry, inW, inH, hsub, vsub int) (Rect, error) {
	r := Rect{X: g.X, Y: g.Y, W: g.W, H: g.H}
	if r.W == 0 {
		r.W = inW - r.X
	}
	if r.H == 0 {
		r.H = inH - r.Y
	}

	r.X &^= (1 << hsub) - 1
	r.Y &^= (1 << vsub) - 1

	log.WithFields(logrus.Fields{
		"function": "Resolve",
		"x":        r.X,
		"y":        r.Y,
		"w":        r.W,
		"h":        r.H,
	}).Info("Resolved crop area")

	if r.X < 0 || r.Y < 0 || r.W <= 0 || r.H <= 0 || r.X > inW-r.W || r.Y > inH-r.H {
		log.WithFields(logrus.Fields{
			"function":     "Resolve",
			"area":         r.String(),
			"input_width":  inW,
			"input_height": inH,
		}).Error("Crop area not within the input area or zero-sized")
		return Rect{}, fmt.Errorf("%w: output area %s not within the input area 0:0:%d:%d or zero-sized",
			ErrInvalidGeometry, r, inW, inH)
	}

	return r, nil
}
