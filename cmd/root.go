package cmd

import "github.com/spf13/cobra"

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gallery",
		Short:        "Alpha Lions NFT gallery",
		SilenceUsage: true,
	}

	cmd.AddCommand(apiCmd())
	cmd.AddCommand(fetchCmd())
	cmd.AddCommand(assetsCmd())

	return cmd
}
