package compress

import (
	"fmt"
	"math"
	"mime"
	"strings"
)

// Media types
const (
	MediaTypeJPEG    = "image/jpeg"
	MediaTypeJPG     = "image/jpg"
	MediaTypePNG     = "image/png"
	MediaTypeWebP    = "image/webp"
	OutputMediaType  = MediaTypeWebP
	OutputExtension  = ".webp"
	TaskIDPrefix     = "compress-"
	DefaultQuality   = 1.0
	DefaultMethod    = 4
	MaxEncodeQuality = 100
)

// MaxPixels bounds the raster surface; one NRGBA raster stays under 256 MiB
const MaxPixels = 1 << 26

// AllowedMediaTypes lists the inputs the compressor accepts
var AllowedMediaTypes = []string{MediaTypeJPEG, MediaTypeJPG, MediaTypePNG, MediaTypeWebP}

// Resampler selects the kernel used when rendering into the target raster
type Resampler string

const (
	ResamplerNearest    Resampler = "nearest"
	ResamplerBilinear   Resampler = "bilinear"
	ResamplerCatmullRom Resampler = "catmull-rom"
	ResamplerLanczos    Resampler = "lanczos"

	DefaultResampler = ResamplerCatmullRom
)

// Resamplers lists the accepted Resampler values
func Resamplers() []Resampler {
	return []Resampler{ResamplerNearest, ResamplerBilinear, ResamplerCatmullRom, ResamplerLanczos}
}

// ParseResampler validates a resampler name; empty selects the default
func ParseResampler(name string) (Resampler, error) {
	if name == "" {
		return DefaultResampler, nil
	}
	for _, r := range Resamplers() {
		if string(r) == strings.ToLower(name) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown resampler: %s", name)
}

// Options controls a single compression. Zero values select defaults:
// unbounded dimensions, quality 1 and the Catmull-Rom kernel.
type Options struct {
	MaxWidth  int
	MaxHeight int
	Quality   float64 // (0, 1]
	Resampler Resampler
}

// withDefaults fills zero fields and validates the rest
func (o Options) withDefaults() (Options, error) {
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	if math.IsNaN(o.Quality) || o.Quality < 0 || o.Quality > 1 {
		return o, ErrInvalidQuality
	}
	if o.Resampler == "" {
		o.Resampler = DefaultResampler
	}
	if _, err := ParseResampler(string(o.Resampler)); err != nil {
		return o, err
	}
	return o, nil
}

// encodeQuality maps (0, 1] onto the encoder's 1..100 scale
func (o Options) encodeQuality() int {
	q := int(math.Round(o.Quality * MaxEncodeQuality))
	if q < 1 {
		q = 1
	}
	return q
}

// IsSupported reports whether mediaType is an accepted input. Parameters
// and letter case are ignored.
func IsSupported(mediaType string) bool {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	for _, allowed := range AllowedMediaTypes {
		if mt == allowed {
			return true
		}
	}
	return false
}
