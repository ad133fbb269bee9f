package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// 构建时通过 ldflags 注入
var (
	version   = "dev"
	buildTime = "unknown"
)

// versionCmd 查看版本信息
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "查看版本信息",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("emotichat %s (built %s)\n", version, buildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
