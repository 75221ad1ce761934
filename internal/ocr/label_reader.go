package ocr

import (
	"bytes"
	"context"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"go.uber.org/zap"
)

// DefaultCropFractions grows the scanned region from the top 10% of the
// photo to the whole image. The destination address sits in the upper part
// of a shipping label, so the smallest crop that yields text wins.
var DefaultCropFractions = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

// LabelReader reads shipping-label text from a photo through an external
// recognition engine, retrying over progressively larger top crops until the
// engine returns text or the whole image has been tried. The retry is a
// bounded loop over a fixed fraction list, never a timed policy, and total
// failure yields an empty string rather than an error.
type LabelReader struct {
	engine    Engine
	fractions []float64
	lang      string
	logger    *zap.Logger
}

// NewLabelReader builds a reader. An empty fraction list falls back to
// DefaultCropFractions.
func NewLabelReader(engine Engine, fractions []float64, lang string, logger *zap.Logger) *LabelReader {
	if len(fractions) == 0 {
		fractions = DefaultCropFractions
	}
	return &LabelReader{
		engine:    engine,
		fractions: fractions,
		lang:      lang,
		logger:    logger,
	}
}

// ReadLabel decodes an uploaded photo and returns the recognized text, or ""
// when the photo cannot be decoded or no crop produced text.
func (r *LabelReader) ReadLabel(ctx context.Context, data []byte) string {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		r.logger.Warn("Cannot decode uploaded photo", zap.Error(err))
		return ""
	}

	height := img.Bounds().Dy()
	for _, fraction := range r.fractions {
		regionHeight := int(float64(height) * fraction)
		if regionHeight <= 0 {
			continue
		}
		if regionHeight > height {
			regionHeight = height
		}

		text, err := r.engine.Recognize(ctx, cropTop(img, regionHeight), r.lang)
		if err != nil {
			r.logger.Warn("Recognition attempt failed",
				zap.Float64("fraction", fraction),
				zap.Error(err))
			continue
		}
		if text != "" {
			return text
		}
	}
	return ""
}

// AddressFromText extracts the address suggestion from recognized label
// text: the first non-blank line, transliterated to ASCII so stray symbols
// from the recognition engine cannot leak into the input field.
func AddressFromText(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(unidecode.Unidecode(line))
		if line != "" {
			return line
		}
	}
	return ""
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func cropTop(img image.Image, height int) image.Image {
	b := img.Bounds()
	region := image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+height)
	if s, ok := img.(subImager); ok {
		return s.SubImage(region)
	}
	out := image.NewRGBA(region)
	draw.Draw(out, region, img, region.Min, draw.Src)
	return out
}
