package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Sudharson1234/emotionv2/internal/emotion"
)

// emotionColors 各情绪在报表里的底色
var emotionColors = map[emotion.Label]string{
	emotion.Joy:      "FFD700",
	emotion.Sadness:  "4169E1",
	emotion.Anger:    "FF4500",
	emotion.Fear:     "8B008B",
	emotion.Disgust:  "228B22",
	emotion.Surprise: "FF1493",
	emotion.Neutral:  "A9A9A9",
}

const (
	sheetHistory  = "Chat History"
	sheetSummary  = "Summary"
	sheetAnalysis = "Emotion Analysis"
)

// ChatRow 报表的一行数据,私聊和公共聊天都能映射进来
type ChatRow struct {
	Timestamp   time.Time
	Username    string
	UserMessage string
	AIResponse  string
	Emotion     string
	Score       float64
}

// Filename 按当前时间生成下载文件名
func Filename(domainName string, now time.Time) string {
	return fmt.Sprintf("%s_Report_%s.xlsx", domainName, now.Format("20060102_150405"))
}

// BuildChatReport 生成三页式聊天报表工作簿
// 调用方负责 Write 到响应流并 Close
func BuildChatReport(rows []ChatRow, domainName string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetHistory); err != nil {
		return nil, fmt.Errorf("rename history sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetAnalysis); err != nil {
		return nil, fmt.Errorf("create analysis sheet: %w", err)
	}

	styles, err := buildStyles(f)
	if err != nil {
		return nil, err
	}

	emotionStats := make(map[string]int)
	for _, row := range rows {
		emotionStats[row.Emotion]++
	}

	if err := writeHistorySheet(f, styles, rows, domainName); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, styles, emotionStats, len(rows), domainName); err != nil {
		return nil, err
	}
	if err := writeAnalysisSheet(f, styles, rows); err != nil {
		return nil, err
	}
	return f, nil
}

type reportStyles struct {
	title    int
	header   int
	info     int
	userMsg  int
	aiMsg    int
	emotion  int
	emotions map[emotion.Label]int
}

func buildStyles(f *excelize.File) (*reportStyles, error) {
	title, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "1A202C"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"00D4FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("build title style: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1A202C"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("build header style: %w", err)
	}

	info, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E8E8E8"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("build info style: %w", err)
	}

	userMsg, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"E3F2FD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("build user message style: %w", err)
	}

	aiMsg, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"F3E5F5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("build ai message style: %w", err)
	}

	emotionStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("build emotion style: %w", err)
	}

	colored := make(map[emotion.Label]int, len(emotionColors))
	for label, color := range emotionColors {
		styleID, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		})
		if err != nil {
			return nil, fmt.Errorf("build %s style: %w", label, err)
		}
		colored[label] = styleID
	}

	return &reportStyles{
		title:    title,
		header:   header,
		info:     info,
		userMsg:  userMsg,
		aiMsg:    aiMsg,
		emotion:  emotionStyle,
		emotions: colored,
	}, nil
}

// emotionCellStyle 标签能归一化时用对应底色,否则用通用样式
func (s *reportStyles) emotionCellStyle(raw string) int {
	if label, ok := emotion.Normalize(raw); ok {
		if styleID, ok := s.emotions[label]; ok {
			return styleID
		}
	}
	return s.emotion
}

func writeHistorySheet(f *excelize.File, styles *reportStyles, rows []ChatRow, domainName string) error {
	widths := map[string]float64{"A": 20, "B": 20, "C": 35, "D": 35, "E": 15, "F": 12, "G": 20}
	for col, width := range widths {
		if err := f.SetColWidth(sheetHistory, col, col, width); err != nil {
			return err
		}
	}

	if err := f.MergeCell(sheetHistory, "A1", "G1"); err != nil {
		return err
	}
	f.SetCellValue(sheetHistory, "A1", fmt.Sprintf("%s - Chat History Report", domainName))
	f.SetCellStyle(sheetHistory, "A1", "G1", styles.title)
	f.SetRowHeight(sheetHistory, 1, 30)

	f.SetCellValue(sheetHistory, "A2", "Report Generated:")
	f.SetCellStyle(sheetHistory, "A2", "B2", styles.info)
	f.SetCellValue(sheetHistory, "B2", time.Now().Format("2006-01-02 03:04:05 PM"))
	f.SetCellValue(sheetHistory, "A3", "Domain:")
	f.SetCellStyle(sheetHistory, "A3", "B3", styles.info)
	f.SetCellValue(sheetHistory, "B3", domainName)

	headers := []string{"Date/Time", "User", "User Message", "AI Response", "Emotion", "Confidence %", "Domain"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheetHistory, cell, header)
		f.SetCellStyle(sheetHistory, cell, cell, styles.header)
	}
	f.SetRowHeight(sheetHistory, 4, 25)

	for i, row := range rows {
		r := i + 5
		f.SetCellValue(sheetHistory, fmt.Sprintf("A%d", r), row.Timestamp.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetHistory, fmt.Sprintf("B%d", r), row.Username)
		f.SetCellValue(sheetHistory, fmt.Sprintf("C%d", r), truncate(row.UserMessage, 500))
		f.SetCellValue(sheetHistory, fmt.Sprintf("D%d", r), truncate(row.AIResponse, 500))
		f.SetCellValue(sheetHistory, fmt.Sprintf("E%d", r), row.Emotion)
		f.SetCellValue(sheetHistory, fmt.Sprintf("F%d", r), round2(row.Score*100))
		f.SetCellValue(sheetHistory, fmt.Sprintf("G%d", r), domainName)

		f.SetCellStyle(sheetHistory, fmt.Sprintf("B%d", r), fmt.Sprintf("C%d", r), styles.userMsg)
		f.SetCellStyle(sheetHistory, fmt.Sprintf("D%d", r), fmt.Sprintf("D%d", r), styles.aiMsg)
		f.SetCellStyle(sheetHistory, fmt.Sprintf("E%d", r), fmt.Sprintf("E%d", r), styles.emotionCellStyle(row.Emotion))
		f.SetCellStyle(sheetHistory, fmt.Sprintf("F%d", r), fmt.Sprintf("F%d", r), styles.emotion)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, styles *reportStyles, stats map[string]int, total int, domainName string) error {
	f.SetColWidth(sheetSummary, "A", "A", 20)
	f.SetColWidth(sheetSummary, "B", "C", 15)

	if err := f.MergeCell(sheetSummary, "A1", "C1"); err != nil {
		return err
	}
	f.SetCellValue(sheetSummary, "A1", fmt.Sprintf("%s - Summary Report", domainName))
	f.SetCellStyle(sheetSummary, "A1", "C1", styles.title)
	f.SetRowHeight(sheetSummary, 1, 30)

	f.SetCellValue(sheetSummary, "A2", "Report Metadata")
	f.SetCellValue(sheetSummary, "A3", "Domain Name:")
	f.SetCellStyle(sheetSummary, "A3", "A3", styles.info)
	f.SetCellValue(sheetSummary, "B3", domainName)
	f.SetCellValue(sheetSummary, "A4", "Report Generated:")
	f.SetCellStyle(sheetSummary, "A4", "A4", styles.info)
	f.SetCellValue(sheetSummary, "B4", time.Now().Format("2006-01-02 03:04:05 PM"))
	f.SetCellValue(sheetSummary, "A5", "Total Messages:")
	f.SetCellStyle(sheetSummary, "A5", "A5", styles.info)
	f.SetCellValue(sheetSummary, "B5", total)

	f.SetCellValue(sheetSummary, "A7", "Emotion Distribution")
	f.SetCellValue(sheetSummary, "A8", "Emotion")
	f.SetCellValue(sheetSummary, "B8", "Count")
	f.SetCellValue(sheetSummary, "C8", "Percentage")
	f.SetCellStyle(sheetSummary, "A8", "C8", styles.header)

	type stat struct {
		emotion string
		count   int
	}
	ranked := make([]stat, 0, len(stats))
	for e, count := range stats {
		ranked = append(ranked, stat{emotion: e, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count == ranked[j].count {
			return ranked[i].emotion < ranked[j].emotion
		}
		return ranked[i].count > ranked[j].count
	})

	for i, item := range ranked {
		r := i + 9
		percentage := 0.0
		if total > 0 {
			percentage = float64(item.count) / float64(total) * 100
		}
		f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", r), item.emotion)
		f.SetCellStyle(sheetSummary, fmt.Sprintf("A%d", r), fmt.Sprintf("A%d", r), styles.emotionCellStyle(item.emotion))
		f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", r), item.count)
		f.SetCellValue(sheetSummary, fmt.Sprintf("C%d", r), fmt.Sprintf("%.1f%%", percentage))
		f.SetCellStyle(sheetSummary, fmt.Sprintf("B%d", r), fmt.Sprintf("C%d", r), styles.emotion)
	}
	return nil
}

func writeAnalysisSheet(f *excelize.File, styles *reportStyles, rows []ChatRow) error {
	f.SetColWidth(sheetAnalysis, "A", "A", 20)
	f.SetColWidth(sheetAnalysis, "B", "B", 35)
	f.SetColWidth(sheetAnalysis, "C", "C", 12)
	f.SetColWidth(sheetAnalysis, "D", "D", 20)

	if err := f.MergeCell(sheetAnalysis, "A1", "D1"); err != nil {
		return err
	}
	f.SetCellValue(sheetAnalysis, "A1", "Emotion Timeline Analysis")
	f.SetCellStyle(sheetAnalysis, "A1", "D1", styles.title)
	f.SetRowHeight(sheetAnalysis, 1, 30)

	headers := []string{"Date/Time", "Message Preview", "Emotion", "Confidence"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetAnalysis, cell, header)
		f.SetCellStyle(sheetAnalysis, cell, cell, styles.header)
	}

	for i, row := range rows {
		r := i + 3
		f.SetCellValue(sheetAnalysis, fmt.Sprintf("A%d", r), row.Timestamp.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetAnalysis, fmt.Sprintf("B%d", r), truncate(row.UserMessage, 100))
		f.SetCellStyle(sheetAnalysis, fmt.Sprintf("B%d", r), fmt.Sprintf("B%d", r), styles.userMsg)
		f.SetCellValue(sheetAnalysis, fmt.Sprintf("C%d", r), row.Emotion)
		f.SetCellStyle(sheetAnalysis, fmt.Sprintf("C%d", r), fmt.Sprintf("C%d", r), styles.emotionCellStyle(row.Emotion))
		f.SetCellValue(sheetAnalysis, fmt.Sprintf("D%d", r), fmt.Sprintf("%.2f%%", row.Score*100))
		f.SetCellStyle(sheetAnalysis, fmt.Sprintf("D%d", r), fmt.Sprintf("D%d", r), styles.emotion)
	}
	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
