package cmd

import (
	"fmt"
	"os"
	"time"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Sudharson1234/emotionv2/internal/database"
	"github.com/Sudharson1234/emotionv2/internal/model"
	"github.com/Sudharson1234/emotionv2/internal/service"
)

var statsPeriod string

// statsCmd 在终端查看情绪统计
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "查看公共聊天室的情绪统计",
	Long:  `读取本地数据库,汇总公共聊天室在指定周期内的情绪分布并以表格输出。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Database.Path != "" {
			os.Setenv("EMOTICHAT_DB_PATH", cfg.Database.Path)
		}
		db := database.GetDB()
		if err := database.AutoMigrate(db); err != nil {
			return err
		}

		chats := service.NewChatService()
		analytics := service.NewAnalyticsService(chats)

		now := time.Now()
		window := model.TimeRange{
			Start: service.PeriodStart(statsPeriod, now),
			End:   now,
		}

		stats, err := analytics.GlobalChatStats(window)
		if err != nil {
			return fmt.Errorf("failed to build stats: %w", err)
		}

		rows := make([][]string, 0, len(stats.Breakdown))
		for _, item := range stats.Breakdown {
			rows = append(rows, []string{
				item.Emotion,
				fmt.Sprintf("%d", item.Count),
				fmt.Sprintf("%.1f%%", item.Percentage),
			})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
			Headers("Emotion", "Count", "Percentage").
			Rows(rows...)

		fmt.Println(t)
		fmt.Println()
		logx.Info("Stats period %s, messages %d, participants %d, dominant %s",
			statsPeriod, stats.TotalMessages, stats.UniqueParticipants, stats.DominantEmotion)

		return database.Close()
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsPeriod, "period", "p", "all", "统计周期 (day/week/month/all)")
	rootCmd.AddCommand(statsCmd)
}
