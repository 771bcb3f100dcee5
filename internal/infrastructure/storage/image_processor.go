package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif"

	"github.com/disintegration/imaging"
)

// ImageProcessor shrinks oversized JPEG and PNG uploads. Other formats pass through.
type ImageProcessor struct {
	MaxDimension int
	Quality      int
}

func NewImageProcessor(maxDimension int) *ImageProcessor {
	if maxDimension <= 0 {
		maxDimension = 2000
	}
	return &ImageProcessor{MaxDimension: maxDimension, Quality: 85}
}

// Fit downsizes data so neither side exceeds MaxDimension, keeping the aspect ratio and
// the original encoding. Images already small enough are returned unchanged.
func (p *ImageProcessor) Fit(data []byte, contentType string) ([]byte, error) {
	if contentType != "image/jpeg" && contentType != "image/png" {
		return data, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("not an image: %w", err)
	}
	if cfg.Width <= p.MaxDimension && cfg.Height <= p.MaxDimension {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}
	resized := imaging.Fit(img, p.MaxDimension, p.MaxDimension, imaging.Lanczos)

	b := new(bytes.Buffer)
	switch contentType {
	case "image/png":
		err = png.Encode(b, resized)
	default:
		err = jpeg.Encode(b, resized, &jpeg.Options{Quality: p.Quality})
	}
	if err != nil {
		return nil, fmt.Errorf("cannot encode %s: %w", contentType, err)
	}
	return b.Bytes(), nil
}
