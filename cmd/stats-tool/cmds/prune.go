package cmds

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	parquetstats "github.com/fraugster/parquet-stats"
)

var (
	pruneColumn string
	pruneValue  string
)

func init() {
	pruneCmd.Flags().StringVar(&pruneColumn, "column", "", "column to check, nested names joined with dots")
	pruneCmd.Flags().StringVar(&pruneValue, "value", "", "literal to look for; timestamps accept most common formats")
	_ = pruneCmd.MarkFlagRequired("column")
	_ = pruneCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune file-name.parquet --column col --value v",
	Short: "Report which row groups an equality scan for the given value could skip",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			_ = cmd.Usage()
			os.Exit(1)
		}

		meta, leaves, err := readMeta(args[0])
		if err != nil {
			log.Fatal(err)
		}

		colIdx := -1
		for i, leaf := range leaves {
			if leaf.name == pruneColumn {
				colIdx = i
				break
			}
		}
		if colIdx < 0 {
			log.Fatalf("column %q not found in the schema", pruneColumn)
		}
		leaf := leaves[colIdx]

		if leaf.elem.Type == nil {
			log.Fatalf("column %q has no physical type", pruneColumn)
		}
		value, err := parseLiteral(*leaf.elem.Type, leaf.elem, pruneValue)
		if err != nil {
			log.Fatal(err)
		}

		skipped := 0
		for rgIdx, rg := range meta.RowGroups {
			if colIdx >= len(rg.Columns) || rg.Columns[colIdx].MetaData == nil {
				fmt.Printf("row group %d: keep (no column chunk metadata)\n", rgIdx)
				continue
			}
			md := rg.Columns[colIdx].MetaData

			bounds, err := parquetstats.DecodeBounds(md.Type, columnParams(leaf.elem), md.Statistics)
			switch {
			case err != nil:
				fmt.Printf("row group %d: keep (unusable statistics: %v)\n", rgIdx, err)
			case bounds == nil:
				fmt.Printf("row group %d: keep (no statistics)\n", rgIdx)
			case bounds.Contains(value):
				fmt.Printf("row group %d: keep (value within min/max)\n", rgIdx)
			default:
				fmt.Printf("row group %d: skip\n", rgIdx)
				skipped++
			}
		}
		fmt.Printf("%d of %d row groups can be skipped\n", skipped, len(meta.RowGroups))
	},
}
