package utils

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"imageresizer/internal/domain"
)

// Resampler scales an image to exactly width x height.
type Resampler interface {
	Name() string
	Resample(img image.Image, width, height int) image.Image
}

type imagingResampler struct {
	filter imaging.ResampleFilter
}

func (r imagingResampler) Name() string { return "imaging" }

func (r imagingResampler) Resample(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, r.filter)
}

type nfntResampler struct {
	interp resize.InterpolationFunction
}

func (r nfntResampler) Name() string { return "nfnt" }

func (r nfntResampler) Resample(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, r.interp)
}

type drawResampler struct {
	scaler draw.Scaler
}

func (r drawResampler) Name() string { return "xdraw" }

func (r drawResampler) Resample(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// NewResampler maps a backend name to a high-quality resampler.
func NewResampler(name string) (Resampler, error) {
	switch strings.ToLower(name) {
	case "", "imaging":
		return imagingResampler{filter: imaging.Lanczos}, nil
	case "nfnt":
		return nfntResampler{interp: resize.Lanczos3}, nil
	case "xdraw":
		return drawResampler{scaler: draw.CatmullRom}, nil
	default:
		return nil, fmt.Errorf("unknown resampler %q", name)
	}
}

type ImageProcessor struct {
	log         *zap.Logger
	resampler   Resampler
	jpegQuality int
}

func NewImageProcessor(resampler Resampler, jpegQuality int, log *zap.Logger) *ImageProcessor {
	return &ImageProcessor{
		log:         log,
		resampler:   resampler,
		jpegQuality: jpegQuality,
	}
}

// Inspect reads the byte size and the pixel dimensions of the image at path
// without decoding the pixel data.
func (p *ImageProcessor) Inspect(path string) (*domain.ImageSelection, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image header %s: %w", path, err)
	}

	return &domain.ImageSelection{
		Path:   path,
		Size:   info.Size(),
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}, nil
}

// ResizeFile resamples the image at path to width x height and writes it back
// over the same path, encoded in the format its extension names. The original
// is not kept.
func (p *ImageProcessor) ResizeFile(path string, width, height int) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image %s: %w", path, err)
	}

	resized := p.resampler.Resample(img, width, height)

	if err := imaging.Save(resized, path, imaging.JPEGQuality(p.jpegQuality)); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}

	p.log.Info("Image resized",
		zap.String("path", path),
		zap.String("resampler", p.resampler.Name()),
		zap.Int("from_width", img.Bounds().Dx()),
		zap.Int("from_height", img.Bounds().Dy()),
		zap.Int("width", width),
		zap.Int("height", height))

	return nil
}

// ContentType maps a decoder format name to its MIME type.
func ContentType(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
