package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/imgdrop/internal/download"
	"github.com/ytget/imgdrop/internal/platform"
	"github.com/ytget/imgdrop/internal/storage"
)

func downloadCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "download <url>...",
		Short: "Download files by URL",
		Long: `Download files by URL into a directory.

Each file is named after the last segment of its URL path. Downloads run
concurrently; failures are logged and do not change the exit status.

Examples:
  imgdrop download https://example.com/images/cat.png
  imgdrop download https://example.com/a.jpg https://example.com/b.jpg --out ./raw`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer func() { _ = logger.Sync() }()

			dir := outDir
			if dir == "" {
				var err error
				if dir, err = platform.GetHomeDownloadsDir(); err != nil {
					dir = platform.FallbackDownloadsPath
				}
			}
			logger.Debug("downloading", zap.Int("count", len(args)), zap.String("dir", dir))

			svc := download.NewService(storage.NewDirSaver(dir), logger)
			for _, rawURL := range args {
				svc.Download(rawURL)
			}
			svc.Wait()
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: ~/Downloads)")

	return cmd
}
