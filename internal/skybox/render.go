package skybox

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/couchcryptid/starseer/internal/domain"
)

// MaxBrightness caps a single star's intensity multiplier.
const MaxBrightness = 1.5

// Options controls the rendered cube map.
type Options struct {
	FaceSize        int
	MagnitudeWeight float64
	Background      colorful.Color
}

// Renderer draws stars onto a cube map net.
type Renderer struct {
	opts   Options
	logger *slog.Logger
}

// NewRenderer validates opts and creates a Renderer.
func NewRenderer(opts Options, logger *slog.Logger) (*Renderer, error) {
	if opts.FaceSize <= 0 {
		return nil, fmt.Errorf("face size must be positive, got %d", opts.FaceSize)
	}
	if opts.MagnitudeWeight <= 0 {
		return nil, errors.New("magnitude weight must be positive")
	}
	return &Renderer{opts: opts, logger: logger}, nil
}

// Brightness converts a visual magnitude to an intensity multiplier: one
// for magnitude 0, scaled by weight and capped at MaxBrightness.
func Brightness(magnitude, weight float64) float64 {
	return math.Min(MaxBrightness, math.Pow(10, -0.4*magnitude)*weight)
}

// Render draws every star as a single pixel added onto the background.
// The result is 4x3 faces; cells outside the cross are transparent.
func (r *Renderer) Render(stars []domain.Star) *image.NRGBA {
	size := r.opts.FaceSize
	img := image.NewNRGBA(image.Rect(0, 0, 4*size, 3*size))

	bg := toNRGBA(r.opts.Background)
	for f := PosX; f <= NegZ; f++ {
		col, row := f.cell()
		for y := row * size; y < (row+1)*size; y++ {
			for x := col * size; x < (col+1)*size; x++ {
				img.SetNRGBA(x, y, bg)
			}
		}
	}

	perFace := make(map[Face]int)
	for _, s := range stars {
		face, u, v := Project(s.Position)
		perFace[face]++

		col, row := face.cell()
		px, py := pixel(u, v, size)
		x, y := col*size+px, row*size+py

		b := Brightness(s.VisualMagnitude, r.opts.MagnitudeWeight)
		base, _ := colorful.MakeColor(img.NRGBAAt(x, y))
		star := colorful.Color{
			R: float64(s.Color.R) / 255 * b,
			G: float64(s.Color.G) / 255 * b,
			B: float64(s.Color.B) / 255 * b,
		}
		img.SetNRGBA(x, y, toNRGBA(add(base, star)))
	}

	r.logger.Debug("skybox rendered",
		"stars", len(stars),
		"face_size", size,
		"+x", perFace[PosX], "-x", perFace[NegX],
		"+y", perFace[PosY], "-y", perFace[NegY],
		"+z", perFace[PosZ], "-z", perFace[NegZ],
	)
	return img
}

func add(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}.Clamped()
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
