package cmds

import (
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	parquetstats "github.com/fraugster/parquet-stats"
)

var boundsRaw bool

func init() {
	boundsCmd.Flags().BoolVar(&boundsRaw, "raw", false, "dump the raw statistics structures instead of decoded values")
	rootCmd.AddCommand(boundsCmd)
}

var boundsCmd = &cobra.Command{
	Use:   "bounds file-name.parquet",
	Short: "Print the decoded min/max statistics of every column chunk",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			_ = cmd.Usage()
			os.Exit(1)
		}

		meta, leaves, err := readMeta(args[0])
		if err != nil {
			log.Fatal(err)
		}

		for rgIdx, rg := range meta.RowGroups {
			fmt.Printf("row group %d (%d rows):\n", rgIdx, rg.NumRows)
			for colIdx, chunk := range rg.Columns {
				if chunk.MetaData == nil || colIdx >= len(leaves) {
					continue
				}
				leaf := leaves[colIdx]

				if boundsRaw {
					fmt.Printf("  %s: %s", leaf.name, spew.Sdump(chunk.MetaData.Statistics))
					continue
				}

				bounds, err := parquetstats.DecodeBounds(chunk.MetaData.Type, columnParams(leaf.elem), chunk.MetaData.Statistics)
				switch {
				case err != nil:
					fmt.Printf("  %s: unusable statistics: %v\n", leaf.name, err)
				case bounds == nil:
					fmt.Printf("  %s: no statistics\n", leaf.name)
				default:
					fmt.Printf("  %s: min=%s max=%s\n", leaf.name,
						formatValue(bounds.Min, leaf.elem), formatValue(bounds.Max, leaf.elem))
				}
			}
		}
	},
}
