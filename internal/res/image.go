package res

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// svgRasterScale renders vector logos at twice their nominal size
const svgRasterScale = 2

// Image is an image ready for embedding: PNG, JPEG or GIF bytes plus the
// pixel size.
type Image struct {
	Data   []byte
	Format string // "PNG", "JPG" or "GIF"
	Width  int
	Height int
}

// LoadImage loads src and converts it to a format the PDF writer embeds
// directly. BMP, TIFF and WEBP are re-encoded as PNG; SVG is rasterized.
func (l *Loader) LoadImage(src string) (*Image, error) {
	l.cacheLock.RLock()
	if img, ok := l.images[src]; ok {
		l.cacheLock.RUnlock()
		return img, nil
	}
	l.cacheLock.RUnlock()

	r, err := l.Load(src)
	if err != nil {
		return nil, err
	}
	if r.Type != ResourceTypeImage {
		return nil, fmt.Errorf("resource is not an image: %s", r.MimeType)
	}

	img, err := normalize(r)
	if err != nil {
		return nil, err
	}

	l.cacheLock.Lock()
	l.images[src] = img
	l.cacheLock.Unlock()
	return img, nil
}

// ImageSize reports the pixel size of src
func (l *Loader) ImageSize(src string) (float64, float64, error) {
	img, err := l.LoadImage(src)
	if err != nil {
		return 0, 0, err
	}
	return float64(img.Width), float64(img.Height), nil
}

func normalize(r *Resource) (*Image, error) {
	if r.MimeType == "image/svg+xml" {
		return rasterizeSVG(r.Data)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(r.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image header: %w", err)
	}

	switch format {
	case "png":
		return &Image{Data: r.Data, Format: "PNG", Width: cfg.Width, Height: cfg.Height}, nil
	case "jpeg":
		return &Image{Data: r.Data, Format: "JPG", Width: cfg.Width, Height: cfg.Height}, nil
	case "gif":
		return &Image{Data: r.Data, Format: "GIF", Width: cfg.Width, Height: cfg.Height}, nil
	}

	decoded, _, err := image.Decode(bytes.NewReader(r.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image: %w", format, err)
	}
	return encodePNG(decoded)
}

func rasterizeSVG(data []byte) (*Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	w := int(math.Ceil(icon.ViewBox.W)) * svgRasterScale
	h := int(math.Ceil(icon.ViewBox.H)) * svgRasterScale
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg has an empty view box")
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return encodePNG(rgba)
}

func encodePNG(img image.Image) (*Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	b := img.Bounds()
	return &Image{Data: buf.Bytes(), Format: "PNG", Width: b.Dx(), Height: b.Dy()}, nil
}
