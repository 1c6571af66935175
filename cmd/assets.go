package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alphalions/gallery/assets"
	"github.com/alphalions/gallery/config"
	"github.com/alphalions/gallery/types"
)

func assetsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Report bundled asset coverage",
		Long: `
Scan the asset directory and report how many tokens have a bundled pixel art image, GLB model and FBX model.

The directory defaults to ASSET_DIR.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				cfg, err := config.GetConfig()
				if err != nil {
					return err
				}
				dir = cfg.GetAssetDir()
			}

			bundle, err := assets.LoadBundle(os.DirFS(dir))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FORMAT\tTOKENS\tFIRST\tLAST") //nolint:errcheck
			for _, f := range types.Formats {
				if f == types.FormatPFP {
					continue
				}
				ids := bundle.TokenIds(f)
				first, last := "-", "-"
				if len(ids) > 0 {
					first, last = ids[0], ids[len(ids)-1]
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", f.Label(), len(ids), first, last) //nolint:errcheck
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "asset directory")

	return cmd
}
