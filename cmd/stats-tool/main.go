package main

import "github.com/fraugster/parquet-stats/cmd/stats-tool/cmds"

func main() {
	cmds.Execute()
}
