package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPermitCmd creates the forward query command: which lots does a permit
// allow?
func newPermitCmd() *cobra.Command {
	var graphPath string

	cmd := &cobra.Command{
		Use:   "permit <id>",
		Short: "List the lots a permit allows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(graphPath)
			if err != nil {
				return err
			}
			lots, err := g.SearchByPermit(args[0])
			if err != nil {
				return err
			}
			if len(lots) == 0 {
				loggerFromContext(cmd.Context()).Warnf("Permit %q allows no lots", args[0])
				return nil
			}
			for _, lot := range lots {
				fmt.Fprintln(cmd.OutOrStdout(), lot)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "graph.json", "graph document produced by 'lotmap build'")
	return cmd
}

// newLotCmd creates the reverse query command: which permits allow a lot?
func newLotCmd() *cobra.Command {
	var graphPath string

	cmd := &cobra.Command{
		Use:   "lot <id>",
		Short: "List the permits that allow a lot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(graphPath)
			if err != nil {
				return err
			}
			permits, err := g.SearchByLot(args[0])
			if err != nil {
				return err
			}
			if len(permits) == 0 {
				loggerFromContext(cmd.Context()).Warnf("No permit allows lot %q", args[0])
				return nil
			}
			for _, p := range permits {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "graph.json", "graph document produced by 'lotmap build'")
	return cmd
}
