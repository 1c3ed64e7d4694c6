package main

import (
	"github.com/banachtech/mcoption/cli"
	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(cli.NewRootCmd().Execute())
}
