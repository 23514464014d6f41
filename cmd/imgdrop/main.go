package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/imgdrop/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var debug bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "imgdrop",
		Short: "Recompress images to WebP and fetch files by URL",
		Long: `imgdrop is the headless side of the ImgDrop desktop app.

It recompresses JPEG, PNG and WebP images to WebP with optional
dimension bounds, downloads files by URL into a directory, and
formats byte counts the way the app displays them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Add commands
	rootCmd.AddCommand(
		sizeCmd(),
		compressCmd(),
		downloadCmd(),
		versionCmd(),
	)

	return rootCmd
}

// newLogger builds the CLI logger; logs go to stderr
func newLogger() *zap.Logger {
	return logging.New("imgdrop", debug)
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
