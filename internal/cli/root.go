// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"code.hybscloud.com/fix/internal/buildinfo"
	"code.hybscloud.com/fix/internal/config"
	"code.hybscloud.com/fix/internal/harness"
	"code.hybscloud.com/fix/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug      bool
		configPath string
		variant    string
		maxDepth   int
	)

	names := make([]string, 0, len(harness.Variants()))
	for _, v := range harness.Variants() {
		names = append(names, string(v))
	}

	cmd := &cobra.Command{
		Use:          "fixdemo",
		Short:        "Print factorials built by a fixed-point combinator",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			restore := logger.Setup(logger.Config{
				Debug:  debug,
				Output: cmd.ErrOrStderr(),
			})
			defer restore()

			opts := harness.DefaultOptions()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				opts = loaded
			}
			if cmd.Flags().Changed("variant") {
				v, err := harness.ParseVariant(variant)
				if err != nil {
					return err
				}
				opts.Variant = v
			}
			if cmd.Flags().Changed("max-depth") {
				opts.MaxDepth = maxDepth
			}

			h, err := harness.New(opts, logger.L())
			if err != nil {
				return err
			}
			_, err = h.Run(cmd.OutOrStdout())
			return err
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log each entry to stderr")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with inputs, threshold, placeholder, variant, max_depth")
	cmd.Flags().StringVar(&variant, "variant", string(harness.VariantObject),
		fmt.Sprintf("combinator variant (%s)", strings.Join(names, ", ")))
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "recursion budget for closure variants (0 = default)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}
