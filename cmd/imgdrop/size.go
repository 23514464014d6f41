package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ytget/imgdrop/internal/format"
)

func sizeCmd() *cobra.Command {
	var decimals int

	cmd := &cobra.Command{
		Use:   "size <bytes>",
		Short: "Format a byte count",
		Long: `Format a byte count with binary units (1 KB = 1024 bytes).

Examples:
  imgdrop size 1536              # 1.50 KB
  imgdrop size 1536 --decimals 1 # 1.5 KB
  imgdrop size 0                 # 0 Bytes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid byte count %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.FormatBytes(value, decimals))
			return nil
		},
	}

	cmd.Flags().IntVarP(&decimals, "decimals", "d", format.DefaultDecimals, "Fraction digits")

	return cmd
}
