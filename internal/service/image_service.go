package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"imageresizer/internal/config"
	"imageresizer/internal/dimension"
	"imageresizer/internal/domain"
	"imageresizer/internal/estimate"
	"imageresizer/internal/repository"
	"imageresizer/pkg/utils"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidDimensions = errors.New("target dimensions must be positive")
	ErrOutsideRoot       = errors.New("image is outside the configured root directory")
)

type ImageService interface {
	Select(path string) (*domain.ImageSelection, error)
	Suggestions(sel *domain.ImageSelection) []domain.Dimensions
	Estimate(sel *domain.ImageSelection, state domain.SelectionState) (domain.DimensionChoice, domain.SizeEstimate, error)
	Resize(ctx context.Context, sel *domain.ImageSelection, state domain.SelectionState) (domain.DimensionChoice, error)
}

type imageService struct {
	s3Repo repository.S3Repository
	cfg    *config.Config
	log    *zap.Logger
	proc   *utils.ImageProcessor
}

// NewImageService wires the service. s3Repo may be nil, in which case resized
// images are only written to disk.
func NewImageService(proc *utils.ImageProcessor, s3Repo repository.S3Repository, cfg *config.Config, log *zap.Logger) ImageService {
	return &imageService{
		s3Repo: s3Repo,
		cfg:    cfg,
		log:    log,
		proc:   proc,
	}
}

// NewFromConfig assembles the resampler, the processor and, when S3
// publishing is enabled, the bucket repository.
func NewFromConfig(ctx context.Context, cfg *config.Config, log *zap.Logger) (ImageService, error) {
	resampler, err := utils.NewResampler(cfg.App.Resampler)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_RESAMPLER: %w", err)
	}
	proc := utils.NewImageProcessor(resampler, cfg.App.JPEGQuality, log)

	if !cfg.S3.Enabled {
		return NewImageService(proc, nil, cfg, log), nil
	}

	s3Repo, err := repository.NewS3Repository(ctx, &cfg.S3, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 repository: %w", err)
	}
	return NewImageService(proc, s3Repo, cfg, log), nil
}

// Select inspects the image at path. With APP_ROOT_DIR set, paths that
// resolve outside it are refused with ErrOutsideRoot.
func (s *imageService) Select(path string) (*domain.ImageSelection, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !s.allowed(ext) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := s.withinRoot(path); err != nil {
		return nil, err
	}

	sel, err := s.proc.Inspect(path)
	if err != nil {
		return nil, err
	}
	if sel.Dimensions().Area() <= 0 {
		return nil, fmt.Errorf("%w: %s", estimate.ErrZeroArea, path)
	}

	s.log.Info("Image selected",
		zap.String("path", path),
		zap.Int64("size", sel.Size),
		zap.Int("width", sel.Width),
		zap.Int("height", sel.Height))

	return sel, nil
}

func (s *imageService) Suggestions(sel *domain.ImageSelection) []domain.Dimensions {
	return dimension.Suggested(sel.Width, sel.Height)
}

func (s *imageService) Estimate(sel *domain.ImageSelection, state domain.SelectionState) (domain.DimensionChoice, domain.SizeEstimate, error) {
	choice, err := dimension.Resolve(state)
	if err != nil {
		return domain.DimensionChoice{}, domain.SizeEstimate{}, err
	}

	est, err := estimate.Estimate(sel.Size, sel.Dimensions(), choice.Dimensions)
	if err != nil {
		return domain.DimensionChoice{}, domain.SizeEstimate{}, err
	}

	return choice, est, nil
}

// Resize overwrites the selected file with a resampled copy. There is no
// backup; a failed write can leave the file damaged.
func (s *imageService) Resize(ctx context.Context, sel *domain.ImageSelection, state domain.SelectionState) (domain.DimensionChoice, error) {
	choice, err := dimension.Resolve(state)
	if err != nil {
		return domain.DimensionChoice{}, err
	}

	target := choice.Dimensions
	if target.Width <= 0 || target.Height <= 0 {
		return domain.DimensionChoice{}, fmt.Errorf("%w: %s", ErrInvalidDimensions, target)
	}

	if err := s.proc.ResizeFile(sel.Path, target.Width, target.Height); err != nil {
		return domain.DimensionChoice{}, err
	}

	if s.s3Repo != nil {
		if err := s.publish(ctx, sel); err != nil {
			return choice, fmt.Errorf("image resized but not published: %w", err)
		}
	}

	return choice, nil
}

func (s *imageService) publish(ctx context.Context, sel *domain.ImageSelection) error {
	data, err := os.ReadFile(sel.Path)
	if err != nil {
		return err
	}

	key := s.cfg.S3.Prefix + uuid.New().String() + strings.ToLower(filepath.Ext(sel.Path))

	return s.s3Repo.UploadFile(ctx, key, bytes.NewReader(data), int64(len(data)), utils.ContentType(sel.Format))
}

func (s *imageService) allowed(ext string) bool {
	for _, f := range s.cfg.App.AllowedFormats {
		if strings.EqualFold(f, ext) {
			return true
		}
	}
	return false
}

func (s *imageService) withinRoot(path string) error {
	if s.cfg.App.RootDir == "" {
		return nil
	}

	root, err := filepath.Abs(s.cfg.App.RootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve root directory: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}

	// Symlinks must not lead out of the root either. A missing file is
	// compared lexically and left for Inspect to report.
	if resolvedAbs, err := filepath.EvalSymlinks(abs); err == nil {
		if resolvedRoot, err := filepath.EvalSymlinks(root); err == nil {
			root, abs = resolvedRoot, resolvedAbs
		}
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrOutsideRoot, path)
	}
	return nil
}
