package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/imgdrop/internal/compress"
	"github.com/ytget/imgdrop/internal/format"
	"github.com/ytget/imgdrop/internal/model"
	"github.com/ytget/imgdrop/internal/storage"
)

type compressFlags struct {
	maxWidth  int
	maxHeight int
	quality   float64
	resampler string
	outDir    string
}

func compressCmd() *cobra.Command {
	flags := &compressFlags{}

	cmd := &cobra.Command{
		Use:   "compress <file>...",
		Short: "Recompress images to WebP",
		Long: `Recompress JPEG, PNG or WebP images to WebP.

Landscape images are bounded by --max-width and portrait images by
--max-height; 0 leaves the dimension unbounded. Output files are named
after the input with a .webp extension and never overwrite existing files.

Examples:
  imgdrop compress photo.jpg
  imgdrop compress *.png --max-width 1920 --quality 0.8
  imgdrop compress scan.png --resampler lanczos --out ./web`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.maxWidth, "max-width", 0, "Width bound for landscape images (0 = none)")
	cmd.Flags().IntVar(&flags.maxHeight, "max-height", 0, "Height bound for portrait images (0 = none)")
	cmd.Flags().Float64VarP(&flags.quality, "quality", "q", compress.DefaultQuality, "Encoder quality in (0, 1]")
	cmd.Flags().StringVar(&flags.resampler, "resampler", string(compress.DefaultResampler), "Resampling kernel: nearest, bilinear, catmull-rom, lanczos")
	cmd.Flags().StringVarP(&flags.outDir, "out", "o", "", "Output directory (default: next to each input)")

	return cmd
}

type pendingCompression struct {
	path    string
	input   *model.Blob
	results <-chan compress.Result
}

func runCompress(cmd *cobra.Command, paths []string, flags *compressFlags) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	resampler, err := compress.ParseResampler(flags.resampler)
	if err != nil {
		return err
	}
	opts := compress.Options{
		MaxWidth:  flags.maxWidth,
		MaxHeight: flags.maxHeight,
		Quality:   flags.quality,
		Resampler: resampler,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Start everything first, then collect in argument order
	failed := 0
	var pending []pendingCompression
	for _, path := range paths {
		blob, err := model.LoadBlob(path)
		if err != nil {
			errorMsg(cmd, "%s: %v", path, err)
			failed++
			continue
		}
		results, err := compress.CompressAsync(ctx, blob, opts)
		if err != nil {
			errorMsg(cmd, "%s: %v", path, err)
			failed++
			continue
		}
		pending = append(pending, pendingCompression{path: path, input: blob, results: results})
	}

	for _, p := range pending {
		res := <-p.results
		if res.Err != nil {
			errorMsg(cmd, "%s: %v", p.path, res.Err)
			failed++
			continue
		}

		dir := flags.outDir
		if dir == "" {
			dir = filepath.Dir(p.path)
		}
		savedPath, err := storage.NewDirSaver(dir).Save(res.Blob.Name, res.Blob.Data)
		if err != nil {
			errorMsg(cmd, "%s: %v", p.path, err)
			failed++
			continue
		}

		logger.Debug("compressed",
			zap.String("input", p.path),
			zap.String("output", savedPath),
			zap.Int("width", res.Target.X),
			zap.Int("height", res.Target.Y))
		success(cmd, "%s: %s → %s", p.input.Name,
			format.FormatSize(p.input.Size()), format.FormatSize(res.Blob.Size()))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}
