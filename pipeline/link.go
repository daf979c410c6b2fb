package pipeline

import (
	"fmt"

	"github.com/opd-ai/vcrop/frame"
	"github.com/opd-ai/vcrop/interfaces"
	"github.com/opd-ai/vcrop/pixfmt"
	"github.com/sirupsen/logrus"
)

// Config holds the delivery settings of a Link.
type Config struct {
	// SliceHeight is the number of input rows per slice. Zero delivers
	// every frame as a single slice.
	SliceHeight int

	// Direction is the slice delivery order.
	Direction frame.Direction

	// Logger receives the link's records. Defaults to the logrus
	// standard logger.
	Logger logrus.FieldLogger
}

// DefaultConfig returns 16-row slices delivered top to bottom.
func DefaultConfig() Config {
	return Config{
		SliceHeight: 16,
		Direction:   frame.TopToBottom,
	}
}

// Stats counts the traffic that went through a Link.
type Stats struct {
	Frames        uint64
	SlicesIn      uint64
	SlicesOut     uint64
	SlicesDropped uint64
}

// Link drives one filter and forwards its output to a sink.
type Link struct {
	filter interfaces.IVideoFilter
	sink   interfaces.ISliceSink
	cfg    Config
	log    *logrus.Entry

	configured bool
	input      interfaces.LinkConfig
	output     interfaces.LinkConfig
	stats      Stats
}

// NewLink creates a link from filter to sink.
func NewLink(filter interfaces.IVideoFilter, sink interfaces.ISliceSink, cfg Config) *Link {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if cfg.Direction != frame.BottomToTop {
		cfg.Direction = frame.TopToBottom
	}
	if cfg.SliceHeight < 0 {
		cfg.SliceHeight = 0
	}

	return &Link{
		filter: filter,
		sink:   sink,
		cfg:    cfg,
		log:    logger.WithField("filter", filter.Name()),
	}
}

// Configure negotiates a format from offered, configures the filter for
// frames of width x height and returns the output link geometry.
func (l *Link) Configure(width, height int, offered []pixfmt.Format) (interfaces.LinkConfig, error) {
	l.configured = false

	desc, err := l.filter.Negotiate(offered)
	if err != nil {
		return interfaces.LinkConfig{}, fmt.Errorf("format negotiation failed: %w", err)
	}

	input := interfaces.LinkConfig{Width: width, Height: height, Format: desc.Format}
	if err := l.filter.ConfigureInput(input); err != nil {
		l.log.WithFields(logrus.Fields{
			"function": "Link.Configure",
			"width":    width,
			"height":   height,
			"format":   desc.Name,
			"error":    err.Error(),
		}).Error("Input link configuration failed")
		return interfaces.LinkConfig{}, fmt.Errorf("input configuration failed: %w", err)
	}

	output, err := l.filter.ConfigureOutput()
	if err != nil {
		return interfaces.LinkConfig{}, fmt.Errorf("output configuration failed: %w", err)
	}

	l.input = input
	l.output = output
	l.configured = true

	l.log.WithFields(logrus.Fields{
		"function":      "Link.Configure",
		"format":        desc.Name,
		"input_width":   input.Width,
		"input_height":  input.Height,
		"output_width":  output.Width,
		"output_height": output.Height,
	}).Info("Link configured")

	return output, nil
}

// Output returns the output link geometry and whether the link is configured.
func (l *Link) Output() (interfaces.LinkConfig, bool) {
	return l.output, l.configured
}

// Stats returns the traffic counters.
func (l *Link) Stats() Stats {
	return l.stats
}

// PushFrame runs one frame through the filter. ref stays owned by the
// caller; the sink receives its own reference to the derived view.
func (l *Link) PushFrame(ref *frame.Ref) error {
	if err := l.validateFrame(ref); err != nil {
		return err
	}

	view := l.filter.DeriveView(ref)
	if err := l.sink.StartFrame(view); err != nil {
		view.Release()
		return fmt.Errorf("start frame: %w", err)
	}

	for _, s := range l.inputSlices() {
		l.stats.SlicesIn++
		out, ok := l.filter.ClipSlice(s)
		if !ok {
			l.stats.SlicesDropped++
			continue
		}
		if err := l.sink.DrawSlice(out); err != nil {
			return fmt.Errorf("draw slice %d+%d: %w", out.Y, out.H, err)
		}
		l.stats.SlicesOut++
	}

	if err := l.sink.EndFrame(); err != nil {
		return fmt.Errorf("end frame: %w", err)
	}
	l.stats.Frames++

	l.log.WithFields(logrus.Fields{
		"function":  "Link.PushFrame",
		"frame":     l.stats.Frames,
		"slices_in": l.stats.SlicesIn,
	}).Debug("Frame delivered")

	return nil
}

// validateFrame checks ref against the configured input link.
func (l *Link) validateFrame(ref *frame.Ref) error {
	if !l.configured {
		return ErrNotConfigured
	}
	if ref == nil {
		return fmt.Errorf("video frame cannot be nil")
	}
	if ref.Format != l.input.Format {
		return fmt.Errorf("%w: got %s, want %s", ErrFormatMismatch, ref.Format, l.input.Format)
	}
	if ref.Width != l.input.Width || ref.Height != l.input.Height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrDimensionMismatch, ref.Width, ref.Height, l.input.Width, l.input.Height)
	}
	return nil
}

// inputSlices splits the input height into slices in delivery order.
func (l *Link) inputSlices() []frame.Slice {
	height := l.input.Height
	step := l.cfg.SliceHeight
	if step == 0 || step > height {
		step = height
	}

	slices := make([]frame.Slice, 0, (height+step-1)/step)
	if l.cfg.Direction == frame.BottomToTop {
		for end := height; end > 0; end -= step {
			start := max(end-step, 0)
			slices = append(slices, frame.Slice{Y: start, H: end - start, Dir: frame.BottomToTop})
		}
		return slices
	}
	for y := 0; y < height; y += step {
		slices = append(slices, frame.Slice{Y: y, H: min(step, height-y), Dir: frame.TopToBottom})
	}
	return slices
}
