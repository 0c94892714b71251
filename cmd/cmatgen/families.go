package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cmatfixture/fixture"
	"github.com/katalvlaran/cmatfixture/serialize"
)

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List fixture families with their default trial counts and layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FAMILY\tTRIALS\tLAYOUT")
			for _, k := range fixture.All() {
				l, err := serialize.LayoutFor(k)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\n", k, k.Trials(), l)
			}

			return tw.Flush()
		},
	}
}
