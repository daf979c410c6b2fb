package crop

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/opd-ai/vcrop/frame"
	"github.com/opd-ai/vcrop/interfaces"
	"github.com/opd-ai/vcrop/limits"
	"github.com/opd-ai/vcrop/pixfmt"
	"github.com/sirupsen/logrus"
)

var _ interfaces.IVideoFilter = (*Filter)(nil)

// Config holds the construction parameters of a crop filter.
type Config struct {
	// Geometry is the crop request as "x:y:w:h".
	Geometry string

	// Lenient treats malformed geometry text as the full-frame geometry
	// instead of failing.
	Lenient bool

	// Logger receives the filter's records. Defaults to the logrus
	// standard logger.
	Logger logrus.FieldLogger
}

// Filter is a crop filter node. It hands out views into the frames it
// receives instead of copying the cropped area.
//
// The crop area is fixed by ConfigureInput and read-only afterwards. A
// Filter is not safe for concurrent use; the host serializes calls.
type Filter struct {
	id       uuid.UUID
	geometry Geometry
	log      *logrus.Entry

	configured bool
	input      interfaces.LinkConfig
	desc       pixfmt.Descriptor
	rect       Rect
}

// NewFilter creates a crop filter from cfg.
func NewFilter(cfg Config) (*Filter, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id := uuid.New()
	log := logger.WithField("filter_id", id.String())

	var g Geometry
	if cfg.Lenient {
		g = ParseGeometryLenient(cfg.Geometry)
	} else {
		var err error
		if g, err = ParseGeometry(cfg.Geometry); err != nil {
			log.WithFields(logrus.Fields{
				"function": "NewFilter",
				"argument": cfg.Geometry,
				"error":    err.Error(),
			}).Error("Failed to parse crop geometry")
			return nil, err
		}
	}

	log.WithFields(logrus.Fields{
		"function": "NewFilter",
		"geometry": g.String(),
	}).Debug("Created crop filter")

	return &Filter{id: id, geometry: g, log: log}, nil
}

// ID returns the instance identifier attached to the filter's log records.
func (f *Filter) ID() uuid.UUID {
	return f.id
}

// Name returns "crop".
func (f *Filter) Name() string {
	return "crop"
}

// Geometry returns the unresolved request the filter was created with.
func (f *Filter) Geometry() Geometry {
	return f.geometry
}

// QueryFormats returns the capability set.
func (f *Filter) QueryFormats() []pixfmt.Format {
	return pixfmt.Supported()
}

// Negotiate returns the descriptor of the first offered format in the
// capability set.
func (f *Filter) Negotiate(offered []pixfmt.Format) (pixfmt.Descriptor, error) {
	for _, format := range offered {
		if pixfmt.IsSupported(format) {
			f.log.WithFields(logrus.Fields{
				"function": "Negotiate",
				"format":   format.String(),
			}).Debug("Negotiated pixel format")
			return format.Descriptor(), nil
		}
	}
	return pixfmt.Descriptor{}, fmt.Errorf("%w: none of %v", ErrUnsupportedFormat, offered)
}

// Configure fixes the crop area for frames of the given link and returns
// it. On failure the filter is left unconfigured.
func (f *Filter) Configure(link interfaces.LinkConfig) (Rect, error) {
	f.configured = false

	if err := limits.ValidateFrameSize(link.Width, link.Height); err != nil {
		return Rect{}, fmt.Errorf("input link: %w", err)
	}
	if !pixfmt.IsSupported(link.Format) {
		return Rect{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, link.Format)
	}

	desc := link.Format.Descriptor()
	rect, err := resolve(f.log, f.geometry, link.Width, link.Height, desc.Log2ChromaW, desc.Log2ChromaH)
	if err != nil {
		return Rect{}, err
	}

	f.input = link
	f.desc = desc
	f.rect = rect
	f.configured = true
	return rect, nil
}

// ConfigureInput implements interfaces.IVideoFilter.
func (f *Filter) ConfigureInput(link interfaces.LinkConfig) error {
	_, err := f.Configure(link)
	return err
}

// ConfigureOutput reports the cropped size on the input's format.
func (f *Filter) ConfigureOutput() (interfaces.LinkConfig, error) {
	if !f.configured {
		return interfaces.LinkConfig{}, ErrNotConfigured
	}
	return interfaces.LinkConfig{Width: f.rect.W, Height: f.rect.H, Format: f.input.Format}, nil
}

// Rect returns the resolved crop area and whether the filter is configured.
func (f *Filter) Rect() (Rect, bool) {
	return f.rect, f.configured
}

// DeriveView returns a new reference to ref's storage showing only the
// crop area. ref itself is not modified. DeriveView panics if the filter is
// not configured or ref does not carry the configured format.
func (f *Filter) DeriveView(ref *frame.Ref) *frame.Ref {
	if !f.configured {
		panic("crop: DeriveView before ConfigureInput")
	}
	if ref.Format != f.input.Format {
		panic(fmt.Sprintf("crop: frame format %s, link format %s", ref.Format, f.input.Format))
	}

	view := ref.Clone()
	off := PlaneOffsets(f.rect, f.desc, view.Linesize)
	for p, n := range off {
		view.Advance(p, n)
	}
	view.Width = f.rect.W
	view.Height = f.rect.H

	f.log.WithFields(logrus.Fields{
		"function": "DeriveView",
		"offsets":  off,
		"width":    view.Width,
		"height":   view.Height,
	}).Debug("Derived cropped view")

	return view
}

// ClipSlice maps an input slice to the output frame.
func (f *Filter) ClipSlice(s frame.Slice) (frame.Slice, bool) {
	out, ok := ClipSlice(s, f.rect)
	if !ok {
		f.log.WithFields(logrus.Fields{
			"function": "ClipSlice",
			"y":        s.Y,
			"h":        s.H,
		}).Debug("Dropped slice outside crop area")
	}
	return out, ok
}
