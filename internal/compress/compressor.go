package compress

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // registers the WebP decoder with image.Decode

	"github.com/ytget/imgdrop/internal/model"
)

// ErrNoInput is returned when Compress is called without a blob
var ErrNoInput = errors.New("no image given")

// encodeWebP writes img as lossy WebP at quality 1..100; swapped in tests
var encodeWebP = func(w io.Writer, img image.Image, quality int) error {
	return webp.Encode(w, img, webp.Options{Quality: quality, Method: DefaultMethod})
}

// Result is the outcome of one asynchronous compression. Exactly one
// Result is delivered per call.
type Result struct {
	Blob   *model.Blob
	Source image.Point // decoded dimensions
	Target image.Point // rendered dimensions
	Err    error
}

// Compress recompresses blob to WebP and blocks until done. Validation
// failures are returned before any decoding happens.
func Compress(ctx context.Context, blob *model.Blob, opts Options) (*model.Blob, error) {
	results, err := CompressAsync(ctx, blob, opts)
	if err != nil {
		return nil, err
	}
	res := <-results
	return res.Blob, res.Err
}

// CompressAsync validates the input synchronously and returns an error
// without starting any work if it is rejected. Otherwise it decodes,
// resizes and encodes in a goroutine and delivers a single Result on the
// returned channel, which is then closed.
func CompressAsync(ctx context.Context, blob *model.Blob, opts Options) (<-chan Result, error) {
	opts, err := validate(blob, opts)
	if err != nil {
		return nil, err
	}

	results := make(chan Result, 1)
	go func() {
		defer close(results)
		results <- run(ctx, blob, opts)
	}()
	return results, nil
}

// validate checks everything that can be checked without decoding
func validate(blob *model.Blob, opts Options) (Options, error) {
	if blob == nil {
		return opts, newError(KindValidation, "", ErrNoInput, nil)
	}
	if !IsSupported(blob.MediaType) {
		return opts, newError(KindValidation, blob.Name, ErrUnsupportedFormat, fmt.Errorf("media type %q", blob.MediaType))
	}
	opts, err := opts.withDefaults()
	if err != nil {
		if errors.Is(err, ErrInvalidQuality) {
			return opts, newError(KindValidation, blob.Name, ErrInvalidQuality, fmt.Errorf("got %v", opts.Quality))
		}
		return opts, &Error{Kind: KindValidation, Name: blob.Name, Err: err}
	}
	return opts, nil
}

// run is the decode -> size -> render -> encode pipeline
func run(ctx context.Context, blob *model.Blob, opts Options) Result {
	src, err := decode(blob.Data)
	if err != nil {
		return Result{Err: newError(KindDecode, blob.Name, ErrDecodeFailed, err)}
	}

	res := Result{Source: src.Bounds().Size()}
	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("compress %s: %w", blob.Name, err)
		return res
	}

	w, h := TargetSize(res.Source.X, res.Source.Y, opts.MaxWidth, opts.MaxHeight)
	res.Target = image.Pt(w, h)

	// an empty raster has nothing to encode
	if w < 1 || h < 1 {
		res.Err = newError(KindEncoding, blob.Name, ErrEncodeFailed, fmt.Errorf("empty surface %dx%d", w, h))
		return res
	}

	raster, err := render(src, w, h, opts.Resampler)
	if err != nil {
		res.Err = newError(KindResource, blob.Name, ErrSurfaceUnavailable, err)
		return res
	}
	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("compress %s: %w", blob.Name, err)
		return res
	}

	data, err := encode(raster, opts.encodeQuality())
	if err != nil {
		res.Err = newError(KindEncoding, blob.Name, ErrEncodeFailed, err)
		return res
	}

	res.Blob = model.NewBlob(WebPName(blob.Name), OutputMediaType, data)
	return res
}

// decode applies EXIF orientation so dimensions match what a viewer shows
func decode(data []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}

// render draws src into a fresh w x h raster, w and h at least 1
func render(src image.Image, w, h int, resampler Resampler) (*image.NRGBA, error) {
	if int64(w)*int64(h) > MaxPixels {
		return nil, fmt.Errorf("surface %dx%d exceeds %d pixels", w, h, MaxPixels)
	}

	if resampler == ResamplerLanczos {
		return imaging.Resize(src, w, h, imaging.Lanczos), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	scalerFor(resampler).Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

func scalerFor(resampler Resampler) draw.Scaler {
	switch resampler {
	case ResamplerNearest:
		return draw.NearestNeighbor
	case ResamplerBilinear:
		return draw.BiLinear
	default:
		return draw.CatmullRom
	}
}

// encode writes a lossy WebP at quality 1..100
func encode(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeWebP(&buf, img, quality); err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return nil, errors.New("encoder produced no data")
	}
	return buf.Bytes(), nil
}
