package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"imageresizer/internal/config"
	"imageresizer/internal/dimension"
	"imageresizer/internal/domain"
	"imageresizer/internal/estimate"
	"imageresizer/internal/i18n"
	"imageresizer/internal/service"
	"imageresizer/pkg/logger"
)

type Options struct {
	Writer    io.Writer
	ErrWriter io.Writer
	// Logger overrides the logger built from configuration.
	Logger *zap.Logger
}

type runner struct {
	opts Options
	log  *zap.Logger
	svc  service.ImageService
	tr   i18n.Translations
}

var dimensionFlags = []cli.Flag{
	&cli.StringFlag{Name: "standard", Aliases: []string{"s"}, Usage: "standard dimension, one of " + fmt.Sprint(dimension.StandardNames())},
	&cli.StringFlag{Name: "suggested", Aliases: []string{"g"}, Usage: "suggested dimension as WxH (see info)"},
	&cli.StringFlag{Name: "width", Aliases: []string{"W"}, Usage: "custom width in pixels"},
	&cli.StringFlag{Name: "height", Aliases: []string{"H"}, Usage: "custom height in pixels"},
}

// NewApp builds the resizer command line. Errors are returned from Run and
// never terminate the process.
func NewApp(opts Options) *cli.App {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.ErrWriter == nil {
		opts.ErrWriter = os.Stderr
	}
	r := &runner{opts: opts}

	return &cli.App{
		Name:      "resizer",
		Usage:     "Preview the size of a resized image and resize it in place",
		Writer:    opts.Writer,
		ErrWriter: opts.ErrWriter,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to config file", EnvVars: []string{"CONFIG"}},
			&cli.StringFlag{Name: "lang", Aliases: []string{"l"}, Usage: "language pack (english, persian)"},
		},
		Before:         r.setup,
		After:          r.teardown,
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:   "standard",
				Usage:  "list the standard dimensions",
				Action: r.listStandard,
			},
			{
				Name:   "languages",
				Usage:  "list the bundled language packs",
				Action: r.listLanguages,
			},
			{
				Name:      "info",
				Usage:     "show file size, dimensions and suggested sizes of an image",
				ArgsUsage: "<image>",
				Action:    r.showInfo,
			},
			{
				Name:      "estimate",
				Usage:     "estimate the file size after resizing",
				ArgsUsage: "<image>",
				Flags:     dimensionFlags,
				Action:    r.showEstimate,
			},
			{
				Name:      "resize",
				Usage:     "resize the image and overwrite it",
				ArgsUsage: "<image>",
				Flags:     dimensionFlags,
				Action:    r.resizeImage,
			},
		},
	}
}

func (r *runner) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	r.log = r.opts.Logger
	if r.log == nil {
		if r.log, err = logger.New(cfg.Log.Level); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	langName := c.String("lang")
	if langName == "" {
		langName = cfg.App.Language
	}
	lang, err := i18n.ParseLanguage(langName)
	if err != nil {
		return err
	}
	r.tr = i18n.LoadOrDefault(cfg.App.LocalesDir, lang, r.log)

	r.svc, err = service.NewFromConfig(c.Context, cfg, r.log)
	return err
}

func (r *runner) teardown(c *cli.Context) error {
	if r.log != nil && r.opts.Logger == nil {
		_ = r.log.Sync()
	}
	return nil
}

func (r *runner) listStandard(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, r.tr.Get(i18n.StandardDimension))
	for _, name := range dimension.StandardNames() {
		fmt.Fprintf(c.App.Writer, "  %s\n", name)
	}
	return nil
}

func (r *runner) listLanguages(c *cli.Context) error {
	for _, l := range i18n.Languages() {
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", l, l.DisplayName())
	}
	return nil
}

func (r *runner) showInfo(c *cli.Context) error {
	sel, err := r.selectImage(c)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "%s: %s\n", r.tr.Get(i18n.FileSize), estimate.FormatSize(float64(sel.Size)))
	fmt.Fprintf(w, "%s %d\n", r.tr.Get(i18n.Width), sel.Width)
	fmt.Fprintf(w, "%s %d\n", r.tr.Get(i18n.Height), sel.Height)
	fmt.Fprintln(w, r.tr.Get(i18n.SuggestedDimension))
	for _, d := range r.svc.Suggestions(sel) {
		fmt.Fprintf(w, "  %s\n", d)
	}
	return nil
}

func (r *runner) showEstimate(c *cli.Context) error {
	sel, err := r.selectImage(c)
	if err != nil {
		return err
	}

	_, est, err := r.svc.Estimate(sel, selectionState(c))
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "%s: %s\n", r.tr.Get(i18n.NewSize), estimate.FormatSize(est.ProjectedBytes))
	fmt.Fprintf(w, "%s: %s\n", r.tr.Get(i18n.SizeReduction), estimate.FormatPercent(est.ReductionPercent))
	fmt.Fprintf(w, "%s: %s\n", r.tr.Get(i18n.SizeJPG), estimate.FormatSize(est.JPGEstimateBytes))
	fmt.Fprintf(w, "%s: %s\n", r.tr.Get(i18n.SizePNG), estimate.FormatSize(est.PNGEstimateBytes))
	return nil
}

func (r *runner) resizeImage(c *cli.Context) error {
	sel, err := r.selectImage(c)
	if err != nil {
		return err
	}

	if _, err := r.svc.Resize(c.Context, sel, selectionState(c)); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s: %s\n", r.tr.Get(i18n.Success), r.tr.Get(i18n.ImageResized))
	return nil
}

func (r *runner) selectImage(c *cli.Context) (*domain.ImageSelection, error) {
	if c.NArg() != 1 {
		return nil, fmt.Errorf("%s: expected exactly one image path", r.tr.Get(i18n.SelectImage))
	}
	return r.svc.Select(c.Args().First())
}

func selectionState(c *cli.Context) domain.SelectionState {
	return domain.SelectionState{
		Standard:     c.String("standard"),
		Suggested:    c.String("suggested"),
		CustomWidth:  c.String("width"),
		CustomHeight: c.String("height"),
	}
}
