package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	descHead bool
	descTail bool
)

var describeCmd = &cobra.Command{
	Use:   "describe <file>",
	Short: "Describe a dataset: dimensions, headers, and preview rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadTable(args[0])
		if err != nil {
			return err
		}
		fmt.Println(tbl.String())
		if descHead {
			color.Yellow("\nFirst rows")
			renderRows(tbl.Headers(), tbl.Head())
		}
		if descTail {
			color.Yellow("\nLast rows")
			renderRows(tbl.Headers(), tbl.Tail())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().BoolVar(&descHead, "head", false, "render the first rows as a table")
	describeCmd.Flags().BoolVar(&descTail, "tail", false, "render the last rows as a table")
}
