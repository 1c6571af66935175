package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alphalions/gallery/api/handler/common"
	"github.com/alphalions/gallery/assets"
	"github.com/alphalions/gallery/config"
	"github.com/alphalions/gallery/fetcher"
	"github.com/alphalions/gallery/gallery"
	"github.com/alphalions/gallery/log"
	"github.com/alphalions/gallery/types"
)

func fetchCmd() *cobra.Command {
	var (
		page       int
		formatFlag string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <wallet>",
		Short: "Print one page of a wallet's collection",
		Long: `
Fetch the Alpha Lions tokens owned by a wallet and print one page of the gallery,
including whether each token's asset is available in the selected format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := common.ValidateWallet(args[0])
			if err != nil {
				return err
			}
			if wallet == "" {
				return fmt.Errorf("wallet is required")
			}
			format, err := types.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			if page < 1 {
				return fmt.Errorf("invalid page: %d", page)
			}

			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}
			logger := log.NewLogger(cfg)

			bundle, err := assets.LoadBundle(os.DirFS(cfg.GetAssetDir()))
			if err != nil {
				return err
			}
			resolver := assets.NewResolver(bundle, assets.DefaultBaseURL)

			session := gallery.NewSession(uuid.NewString(), fetcher.NewClient(cfg.GetUpstreamConfig(), logger), cfg.GetPageSize(), logger)
			if err := session.Connect(cmd.Context(), wallet); err != nil {
				return err
			}
			if page > 1 {
				if err := session.SelectPage(page); err != nil {
					return err
				}
			}

			view := session.View(format, resolver)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}
			return printView(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to print")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", string(types.FormatPFP), "download format (PFP, PIXEL_ART, GLB, FBX)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the view as JSON")

	return cmd
}

func printView(out io.Writer, view gallery.View) error {
	if view.State != gallery.StateReady {
		_, err := fmt.Fprintln(out, view.Message)
		return err
	}

	fmt.Fprintf(out, "%s\n%s (page %d of %d)\n\n", view.Title, view.Subtitle, view.Page, view.TotalPages) //nolint:errcheck

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tNAME\tDOWNLOAD\tLOCATION") //nolint:errcheck
	for _, card := range view.Cards {
		location := "-"
		if card.Image != nil {
			location = card.Image.Location
		}
		download := "yes"
		if !card.DownloadEnabled {
			download = "no"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", card.TokenId, card.Name, download, location) //nolint:errcheck
	}
	return w.Flush()
}
