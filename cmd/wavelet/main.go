package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/octu0/wavelet"
)

type options struct {
	filter   string
	levels   int
	boundary string
	verbose  bool

	logger *slog.Logger
}

func (o *options) setup(cmd *cobra.Command) {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (o *options) bank() (*wavelet.Bank, wavelet.Boundary, error) {
	bank, err := wavelet.Lookup(o.filter)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	b, err := wavelet.ParseBoundary(o.boundary)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	return bank, b, nil
}

func newRootCmd() *cobra.Command {
	opt := &options{}
	root := &cobra.Command{
		Use:           "wavelet",
		Short:         "multiresolution wavelet transform of images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opt.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opt.filter, "filter", "d4", "filter family: "+strings.Join(wavelet.Names(), ", "))
	flags.IntVar(&opt.levels, "levels", 3, "decomposition levels")
	flags.StringVar(&opt.boundary, "boundary", wavelet.Cyclic.String(), "boundary policy: cyclic or mirror")
	flags.BoolVar(&opt.verbose, "verbose", false, "debug logging")

	root.AddCommand(
		newFiltersCmd(opt),
		newForwardCmd(opt),
		newInverseCmd(opt),
		newDemoCmd(opt),
	)
	return root
}

func newFiltersCmd(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "list the filter catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFilters(cmd.OutOrStdout())
		},
	}
}

func printFilters(w io.Writer) error {
	for _, name := range wavelet.Names() {
		bank, err := wavelet.Lookup(name)
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Fprintf(w, "%-9s %-12s taps=%d/%d/%d/%d sums=%.3f %.3f %.3f %.3f\n",
			bank.Name, bank.Family,
			bank.AnalysisLow.Len(), bank.AnalysisHigh.Len(), bank.SynthesisLow.Len(), bank.SynthesisHigh.Len(),
			bank.AnalysisLow.Sum(), bank.AnalysisHigh.Sum(), bank.SynthesisLow.Sum(), bank.SynthesisHigh.Sum(),
		)
	}
	return nil
}

func newForwardCmd(opt *options) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "forward",
		Short: "write the wavelet pyramid of an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, b, err := opt.bank()
			if err != nil {
				return errors.WithStack(err)
			}
			img, err := loadImage(in)
			if err != nil {
				return errors.WithStack(err)
			}
			opt.logger.Debug("loaded", "path", in, "width", img.Width, "height", img.Height)

			pyr, err := wavelet.Forward(opt.levels, img, bank, b)
			if err != nil {
				return errors.WithStack(err)
			}

			stats, err := measureBands(pyr, opt.levels)
			if err != nil {
				return errors.WithStack(err)
			}
			for _, s := range stats {
				opt.logger.Info("band",
					"level", s.Band.Level,
					"orientation", s.Band.Orientation.String(),
					"mean", s.Mean,
					"energy", s.Energy,
				)
			}

			if err := saveImage(pyr, out); err != nil {
				return errors.WithStack(err)
			}
			opt.logger.Info("forward", "filter", bank.Name, "levels", opt.levels, "boundary", b.String(), "out", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input image")
	cmd.Flags().StringVar(&out, "out", "pyramid.png", "output PNG")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func newInverseCmd(opt *options) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "inverse",
		Short: "reconstruct an image from a pyramid PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, b, err := opt.bank()
			if err != nil {
				return errors.WithStack(err)
			}
			pyr, err := loadImage(in)
			if err != nil {
				return errors.WithStack(err)
			}

			img, err := wavelet.Inverse(opt.levels, pyr, bank, b)
			if err != nil {
				return errors.WithStack(err)
			}
			if err := saveImage(img, out); err != nil {
				return errors.WithStack(err)
			}
			opt.logger.Info("inverse", "filter", bank.Name, "levels", opt.levels, "boundary", b.String(), "out", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "pyramid PNG")
	cmd.Flags().StringVar(&out, "out", "restored.png", "output PNG")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

type demoResult struct {
	Filter   string
	PSNR     float64
	SSIM     float64
	MaxErr   float64
	Pyramid  *wavelet.Image
	Restored *wavelet.Image
}

func newDemoCmd(opt *options) *cobra.Command {
	var in, outDir string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "transform and restore an image with each listed filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := wavelet.ParseBoundary(opt.boundary)
			if err != nil {
				return errors.WithStack(err)
			}
			img, err := loadImage(in)
			if err != nil {
				return errors.WithStack(err)
			}

			results, err := runDemo(opt, img, filterList(opt.filter), b, outDir)
			if err != nil {
				return errors.WithStack(err)
			}
			w := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(w, "%-9s psnr=%6.2fdB ssim=%.4f max_err=%.6f\n", r.Filter, r.PSNR, r.SSIM, r.MaxErr)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input image")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "output directory")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

// filterList splits a comma separated --filter value.
func filterList(s string) []string {
	names := lo.Map(strings.Split(s, ","), func(v string, _ int) string {
		return strings.TrimSpace(v)
	})
	return lo.Compact(names)
}

func runDemo(opt *options, img *wavelet.Image, filters []string, b wavelet.Boundary, outDir string) ([]demoResult, error) {
	banks := make([]*wavelet.Bank, 0, len(filters))
	for _, name := range filters {
		bank, err := wavelet.Lookup(name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		banks = append(banks, bank)
	}
	banks = lo.UniqBy(banks, func(bank *wavelet.Bank) string {
		return bank.Name
	})

	results := make([]demoResult, 0, len(banks))
	for _, bank := range banks {
		pyr, err := wavelet.Forward(opt.levels, img, bank, b)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		restored, err := wavelet.Inverse(opt.levels, pyr, bank, b)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		psnr, err := wavelet.PSNR(img.View(), restored.View())
		if err != nil {
			return nil, errors.WithStack(err)
		}
		ssim, err := wavelet.SSIM(img.View(), restored.View())
		if err != nil {
			return nil, errors.WithStack(err)
		}
		maxErr, err := wavelet.MaxAbsDiff(img.View(), restored.View())
		if err != nil {
			return nil, errors.WithStack(err)
		}

		opt.logger.Debug("demo", "filter", bank.Name, "psnr", psnr, "ssim", ssim, "max_err", maxErr)
		results = append(results, demoResult{bank.Name, psnr, ssim, maxErr, pyr, restored})
	}

	// files are written only once every filter succeeded
	for _, r := range results {
		if err := saveImage(r.Pyramid, filepath.Join(outDir, "transformed-"+r.Filter+".png")); err != nil {
			return nil, errors.WithStack(err)
		}
		if err := saveImage(r.Restored, filepath.Join(outDir, "restored-"+r.Filter+".png")); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return results, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
