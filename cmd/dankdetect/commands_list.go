package main

import (
	"fmt"

	"github.com/AvengeMedia/dankdetect/pkg/desktop"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recognized desktop environments",
	Long:  "List every desktop environment this tool can classify, with its toolkit family",
	Run:   runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	for _, de := range desktop.All() {
		line := valueStyle.Render(fmt.Sprintf("%-16s", de.String()))
		if family := familyName(de.GTK(), de.Qt()); family != "" {
			line += dimStyle.Render(family)
		}
		fmt.Println(line)
	}
}
