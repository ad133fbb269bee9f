package cmd

import (
	"os"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/spf13/cobra"

	"github.com/Sudharson1234/emotionv2/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "emotichat",
	Short: "情绪感知聊天服务",
	Long:  `EmotiChat 是一个情绪感知的聊天服务,支持文本、图像和视频的情绪识别,并生成共情回复。`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		return nil
	},
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("Command failed: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径 (默认查找 ./configs/config.yaml)")
}
