package crop

import (
	"bytes"
	"testing"

	"github.com/opd-ai/vcrop/frame"
	"github.com/opd-ai/vcrop/interfaces"
	"github.com/opd-ai/vcrop/limits"
	"github.com/opd-ai/vcrop/pixfmt"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFilter(t *testing.T, geometry string) *Filter {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	f, err := NewFilter(Config{Geometry: geometry, Logger: logger})
	require.NoError(t, err)
	return f
}

func hd420() interfaces.LinkConfig {
	return interfaces.LinkConfig{Width: 1920, Height: 1080, Format: pixfmt.YUV420P}
}

func TestNewFilter(t *testing.T) {
	f := newTestFilter(t, "100:50:640:480")
	assert.Equal(t, "crop", f.Name())
	assert.Equal(t, Geometry{100, 50, 640, 480}, f.Geometry())
	assert.NotEqual(t, f.ID(), newTestFilter(t, "").ID())

	_, configured := f.Rect()
	assert.False(t, configured)
}

func TestNewFilter_MalformedGeometry(t *testing.T) {
	_, err := NewFilter(Config{Geometry: "a:b:c:d", Logger: logrus.New()})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	f, err := NewFilter(Config{Geometry: "a:b:c:d", Lenient: true})
	require.NoError(t, err)
	assert.Equal(t, Geometry{}, f.Geometry())

	rect, err := f.Configure(hd420())
	require.NoError(t, err)
	assert.Equal(t, Rect{0, 0, 1920, 1080}, rect)
}

func TestFilter_Negotiate(t *testing.T) {
	f := newTestFilter(t, "")

	d, err := f.Negotiate([]pixfmt.Format{pixfmt.NV12, pixfmt.YUYV422, pixfmt.YUV422P, pixfmt.YUV420P})
	require.NoError(t, err)
	assert.Equal(t, pixfmt.YUV422P, d.Format)
	assert.Equal(t, 1, d.Log2ChromaW)

	_, err = f.Negotiate([]pixfmt.Format{pixfmt.NV12})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = f.Negotiate(nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	assert.Equal(t, pixfmt.Supported(), f.QueryFormats())
}

func TestFilter_Configure(t *testing.T) {
	tests := []struct {
		name     string
		geometry string
		link     interfaces.LinkConfig
		want     Rect
		wantErr  error
	}{
		{"aligned", "100:50:640:480", hd420(), Rect{100, 50, 640, 480}, nil},
		{"unaligned x", "101:50:640:480", hd420(), Rect{100, 50, 640, 480}, nil},
		{"full frame", "0:0:0:0", hd420(), Rect{0, 0, 1920, 1080}, nil},
		{"too wide", "0:0:2000:1080", hd420(), Rect{}, ErrInvalidGeometry},
		{"unsupported format", "", interfaces.LinkConfig{Width: 64, Height: 64, Format: pixfmt.NV12}, Rect{}, ErrUnsupportedFormat},
		{"empty link", "", interfaces.LinkConfig{Width: 0, Height: 64, Format: pixfmt.GRAY8}, Rect{}, limits.ErrFrameEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFilter(t, tt.geometry)
			got, err := f.Configure(tt.link)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, configured := f.Rect()
				assert.False(t, configured)
				_, err = f.ConfigureOutput()
				assert.ErrorIs(t, err, ErrNotConfigured)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			out, err := f.ConfigureOutput()
			require.NoError(t, err)
			assert.Equal(t, interfaces.LinkConfig{Width: tt.want.W, Height: tt.want.H, Format: tt.link.Format}, out)
		})
	}
}

func TestFilter_ReconfigureFailureDeactivates(t *testing.T) {
	f := newTestFilter(t, "0:0:1000:1000")
	require.NoError(t, f.ConfigureInput(hd420()))

	err := f.ConfigureInput(interfaces.LinkConfig{Width: 640, Height: 480, Format: pixfmt.YUV420P})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	_, configured := f.Rect()
	assert.False(t, configured)
}

func TestFilter_DeriveView_YUV420P(t *testing.T) {
	src, err := frame.Alloc(pixfmt.YUV420P, 1920, 1080, 32)
	require.NoError(t, err)
	defer src.Release()

	for _, geometry := range []string{"100:50:640:480", "101:50:640:480"} {
		t.Run(geometry, func(t *testing.T) {
			f := newTestFilter(t, geometry)
			require.NoError(t, f.ConfigureInput(hd420()))

			view := f.DeriveView(src)
			defer view.Release()

			assert.Equal(t, 640, view.Width)
			assert.Equal(t, 480, view.Height)
			assert.Equal(t, pixfmt.YUV420P, view.Format)
			assert.Equal(t, src.Linesize, view.Linesize)
			assert.Equal(t, 50*src.Linesize[0]+100, view.Offset(0))
			assert.Equal(t, 25*src.Linesize[1]+50, view.Offset(1))
			assert.Equal(t, 25*src.Linesize[2]+50, view.Offset(2))
			assert.Nil(t, view.Data[3])

			assert.Equal(t, 1920, src.Width, "source reference must keep its size")
			assert.Zero(t, src.Offset(0))
		})
	}
}

func TestFilter_DeriveView_SharesStorage(t *testing.T) {
	src, err := frame.Alloc(pixfmt.GRAY8, 16, 16, 1)
	require.NoError(t, err)
	for i := range src.Data[0] {
		src.Data[0][i] = byte(i)
	}

	f := newTestFilter(t, "4:2:8:8")
	require.NoError(t, f.ConfigureInput(interfaces.LinkConfig{Width: 16, Height: 16, Format: pixfmt.GRAY8}))

	view := f.DeriveView(src)
	assert.True(t, view.SharesStorage(src))
	assert.Equal(t, 2, src.Buffer().RefCount())
	assert.Equal(t, []byte{36, 37, 38, 39, 40, 41, 42, 43}, view.Row(0, 0))
	assert.Equal(t, []byte{148, 149, 150, 151, 152, 153, 154, 155}, view.Row(0, 7))

	view.Data[0][0] = 0xFF
	assert.Equal(t, byte(0xFF), src.Data[0][2*16+4])

	src.Release()
	assert.Equal(t, 1, view.Buffer().RefCount())
	assert.Equal(t, byte(37), view.Row(0, 0)[1])
	view.Release()
}

func TestFilter_DeriveView_Palette(t *testing.T) {
	src, err := frame.Alloc(pixfmt.PAL8, 32, 32, 1)
	require.NoError(t, err)
	defer src.Release()

	f := newTestFilter(t, "3:5:10:10")
	require.NoError(t, f.ConfigureInput(interfaces.LinkConfig{Width: 32, Height: 32, Format: pixfmt.PAL8}))

	view := f.DeriveView(src)
	defer view.Release()

	assert.Equal(t, 5*32+3, view.Offset(0))
	assert.Zero(t, view.Offset(1))
	assert.Len(t, view.Data[1], pixfmt.PaletteSize)
	assert.Same(t, &src.Data[1][0], &view.Data[1][0])
}

func TestFilter_DeriveView_AlphaPlane(t *testing.T) {
	src, err := frame.Alloc(pixfmt.YUVA420P, 64, 64, 16)
	require.NoError(t, err)
	defer src.Release()

	f := newTestFilter(t, "9:7:16:16")
	require.NoError(t, f.ConfigureInput(interfaces.LinkConfig{Width: 64, Height: 64, Format: pixfmt.YUVA420P}))
	rect, _ := f.Rect()
	assert.Equal(t, Rect{8, 6, 16, 16}, rect)

	view := f.DeriveView(src)
	defer view.Release()

	assert.Equal(t, 6*64+8, view.Offset(0))
	assert.Equal(t, 3*32+4, view.Offset(1))
	assert.Equal(t, 3*32+4, view.Offset(2))
	assert.Equal(t, 6*64+8, view.Offset(3))
}

func TestFilter_DeriveView_Idempotent(t *testing.T) {
	src, err := frame.Alloc(pixfmt.YUV422P16LE, 128, 64, 32)
	require.NoError(t, err)
	defer src.Release()

	f := newTestFilter(t, "10:10:32:32")
	require.NoError(t, f.ConfigureInput(interfaces.LinkConfig{Width: 128, Height: 64, Format: pixfmt.YUV422P16LE}))

	a := f.DeriveView(src)
	b := f.DeriveView(src)
	defer a.Release()
	defer b.Release()

	for p := 0; p < 4; p++ {
		assert.Equal(t, a.Offset(p), b.Offset(p))
	}
	assert.Equal(t, a.Width, b.Width)
	assert.Equal(t, a.Height, b.Height)
	assert.Equal(t, 3, src.Buffer().RefCount())
}

func TestFilter_DeriveView_Preconditions(t *testing.T) {
	src, err := frame.Alloc(pixfmt.RGB24, 16, 16, 1)
	require.NoError(t, err)
	defer src.Release()

	f := newTestFilter(t, "")
	assert.Panics(t, func() { f.DeriveView(src) })

	require.NoError(t, f.ConfigureInput(interfaces.LinkConfig{Width: 16, Height: 16, Format: pixfmt.BGR24}))
	assert.Panics(t, func() { f.DeriveView(src) })
}

func TestFilter_ClipSlice(t *testing.T) {
	f := newTestFilter(t, "100:50:640:480")
	require.NoError(t, f.ConfigureInput(hd420()))

	_, ok := f.ClipSlice(frame.Slice{Y: 0, H: 40, Dir: frame.TopToBottom})
	assert.False(t, ok)

	out, ok := f.ClipSlice(frame.Slice{Y: 30, H: 40, Dir: frame.TopToBottom})
	require.True(t, ok)
	assert.Equal(t, frame.Slice{Y: 0, H: 20, Dir: frame.TopToBottom}, out)
}

func TestFilter_LogsCarryFilterID(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})

	f, err := NewFilter(Config{Geometry: "0:0:2000:1080", Logger: logger})
	require.NoError(t, err)

	_, err = f.Configure(hd420())
	require.Error(t, err)
	assert.Contains(t, buf.String(), "filter_id="+f.ID().String())
	assert.Contains(t, buf.String(), "level=error")
}
