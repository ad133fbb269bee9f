package vision

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// FrameExtractor 基于 ffmpeg 的视频抽帧器
type FrameExtractor struct {
	ffmpegPath string
}

// NewFrameExtractor 创建抽帧器,path 为空时使用 PATH 里的 ffmpeg
func NewFrameExtractor(path string) *FrameExtractor {
	if path == "" {
		path = "ffmpeg"
	}
	return &FrameExtractor{ffmpegPath: path}
}

// ExtractFrames 把视频解成 JPEG 帧序列,按帧序返回
// 帧文件落在临时目录,函数返回前清理
func (e *FrameExtractor) ExtractFrames(ctx context.Context, videoPath string) ([][]byte, error) {
	tmpDir, err := os.MkdirTemp("", "emotichat-frames-*")
	if err != nil {
		return nil, fmt.Errorf("create frame dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pattern := filepath.Join(tmpDir, "frame_%06d.jpg")
	cmd := exec.CommandContext(ctx, e.ffmpegPath,
		"-hide_banner", "-loglevel", "error",
		"-i", videoPath,
		"-vsync", "0",
		"-q:v", "2",
		pattern,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg extract frames: %w: %s", err, stderr.String())
	}

	entries, err := filepath.Glob(filepath.Join(tmpDir, "frame_*.jpg"))
	if err != nil {
		return nil, fmt.Errorf("list frames: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no frames extracted from %s", videoPath)
	}
	sort.Strings(entries)

	frames := make([][]byte, 0, len(entries))
	for _, entry := range entries {
		data, err := os.ReadFile(entry)
		if err != nil {
			return nil, fmt.Errorf("read frame %s: %w", entry, err)
		}
		frames = append(frames, data)
	}
	return frames, nil
}
