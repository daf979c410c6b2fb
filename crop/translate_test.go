package crop

import (
	"testing"

	"github.com/opd-ai/vcrop/pixfmt"
	"github.com/stretchr/testify/assert"
)

func TestPlaneOffsets_YUV420P(t *testing.T) {
	d := pixfmt.YUV420P.Descriptor()
	linesize := [4]int{1920, 960, 960, 0}

	off := PlaneOffsets(Rect{100, 50, 640, 480}, d, linesize)

	assert.Equal(t, 50*1920+100, off[0])
	assert.Equal(t, 25*960+50, off[1])
	assert.Equal(t, 25*960+50, off[2])
	assert.Zero(t, off[3])
}

func TestPlaneOffsets_PaddedStrides(t *testing.T) {
	d := pixfmt.YUV420P.Descriptor()
	linesize := [4]int{2048, 1024, 1056, 0}

	off := PlaneOffsets(Rect{100, 50, 640, 480}, d, linesize)

	assert.Equal(t, 50*2048+100, off[0])
	assert.Equal(t, 25*1024+50, off[1])
	assert.Equal(t, 25*1056+50, off[2])
}

func TestPlaneOffsets_Formats(t *testing.T) {
	r := Rect{X: 8, Y: 12, W: 16, H: 16}

	tests := []struct {
		name     string
		format   pixfmt.Format
		linesize [4]int
		want     [4]int
	}{
		{"yuv420p16le", pixfmt.YUV420P16LE, [4]int{128, 64, 64}, [4]int{12*128 + 16, 6*64 + 8, 6*64 + 8, 0}},
		{"yuv422p", pixfmt.YUV422P, [4]int{64, 32, 32}, [4]int{12*64 + 8, 12*32 + 4, 12*32 + 4, 0}},
		{"yuv444p16be", pixfmt.YUV444P16BE, [4]int{128, 128, 128}, [4]int{12*128 + 16, 12*128 + 16, 12*128 + 16, 0}},
		{"yuv410p", pixfmt.YUV410P, [4]int{64, 16, 16}, [4]int{12*64 + 8, 3*16 + 2, 3*16 + 2, 0}},
		{"yuv411p", pixfmt.YUV411P, [4]int{64, 16, 16}, [4]int{12*64 + 8, 12*16 + 2, 12*16 + 2, 0}},
		{"yuv440p", pixfmt.YUV440P, [4]int{64, 64, 64}, [4]int{12*64 + 8, 6*64 + 8, 6*64 + 8, 0}},
		{"rgb24", pixfmt.RGB24, [4]int{192}, [4]int{12*192 + 24, 0, 0, 0}},
		{"rgb48be", pixfmt.RGB48BE, [4]int{384}, [4]int{12*384 + 48, 0, 0, 0}},
		{"bgra", pixfmt.BGRA, [4]int{256}, [4]int{12*256 + 32, 0, 0, 0}},
		{"rgb565le", pixfmt.RGB565LE, [4]int{128}, [4]int{12*128 + 16, 0, 0, 0}},
		{"gray16be", pixfmt.GRAY16BE, [4]int{128}, [4]int{12*128 + 16, 0, 0, 0}},
		{"gray", pixfmt.GRAY8, [4]int{64}, [4]int{12*64 + 8, 0, 0, 0}},
		{"yuva420p alpha at full resolution", pixfmt.YUVA420P, [4]int{64, 32, 32, 64}, [4]int{12*64 + 8, 6*32 + 4, 6*32 + 4, 12*64 + 8}},
		{"pal8 keeps palette", pixfmt.PAL8, [4]int{64, 4}, [4]int{12*64 + 8, 0, 0, 0}},
		{"rgb8 keeps palette", pixfmt.RGB8, [4]int{64, 4}, [4]int{12*64 + 8, 0, 0, 0}},
		{"bgr4_byte keeps palette", pixfmt.BGR4Byte, [4]int{64, 4}, [4]int{12*64 + 8, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaneOffsets(r, tt.format.Descriptor(), tt.linesize))
		})
	}
}

// TestPlaneOffsets_ChromaFormula checks the chroma plane formula over every
// supported non-palette format and a grid of aligned rectangles.
func TestPlaneOffsets_ChromaFormula(t *testing.T) {
	for _, f := range pixfmt.Supported() {
		d := f.Descriptor()
		steps := d.MaxPixSteps()
		linesize := [4]int{4096, 2048, 2080, 4096}

		for x := 0; x < 32; x += 1 << d.Log2ChromaW {
			for y := 0; y < 32; y += 1 << d.Log2ChromaH {
				r := Rect{X: x, Y: y, W: 8, H: 8}
				off := PlaneOffsets(r, d, linesize)

				assert.Equal(t, y*linesize[0]+x*steps[0], off[0], "%s plane 0", d.Name)
				for p := 1; p <= 2; p++ {
					want := 0
					if !d.IsPalette() && p < d.PlaneCount() {
						want = (y>>d.Log2ChromaH)*linesize[p] + (x*steps[p])>>d.Log2ChromaW
					}
					assert.Equal(t, want, off[p], "%s plane %d", d.Name, p)
				}
			}
		}
	}
}

func TestPlaneOffsets_Idempotent(t *testing.T) {
	d := pixfmt.YUVA420P.Descriptor()
	r := Rect{100, 50, 640, 480}
	linesize := [4]int{1920, 960, 960, 1920}

	assert.Equal(t, PlaneOffsets(r, d, linesize), PlaneOffsets(r, d, linesize))
}
