package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/troikahq/troika/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("troika version %s %s/%s (%s)\n",
			version.Get(), runtime.GOOS, runtime.GOARCH, runtime.Version())
	},
}
