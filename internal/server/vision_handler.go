package server

import (
	"encoding/base64"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"cnb.cool/zhiqiangwang/pkg/logx"
)

// ==================== 图像与视频情绪 ====================

func (s *HTTPGinServer) handleImageDetection(c *gin.Context) {
	if s.deps.FaceAnalyzer == nil {
		s.error(c, http.StatusServiceUnavailable, "Face analysis is not enabled")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		s.error(c, http.StatusBadRequest, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.error(c, http.StatusBadRequest, "Failed to open uploaded image")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.error(c, http.StatusBadRequest, "Failed to read uploaded image")
		return
	}

	result, err := s.deps.FaceAnalyzer.AnalyzeImage(c.Request.Context(), data)
	if err != nil {
		logx.Error("Image emotion detection failed: %v", err)
		s.error(c, http.StatusInternalServerError, "Failed to analyze image")
		return
	}

	s.success(c, result)
}

func (s *HTTPGinServer) handleVideoDetection(c *gin.Context) {
	if s.deps.VideoAnalyzer == nil {
		s.error(c, http.StatusServiceUnavailable, "Video analysis is not enabled")
		return
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		s.error(c, http.StatusBadRequest, "Video file is required")
		return
	}

	// 抽帧走 ffmpeg,需要先落地成临时文件
	tmpFile, err := os.CreateTemp("", "emotichat-video-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		logx.Error("Failed to create temp video file: %v", err)
		s.error(c, http.StatusInternalServerError, "Failed to process video")
		return
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		logx.Error("Failed to save uploaded video: %v", err)
		s.error(c, http.StatusInternalServerError, "Failed to process video")
		return
	}

	result, err := s.deps.VideoAnalyzer.AnalyzeVideo(c.Request.Context(), tmpPath)
	if err != nil {
		logx.Error("Video emotion detection failed: %v", err)
		s.error(c, http.StatusUnprocessableEntity, "Failed to analyze video: "+err.Error())
		return
	}

	s.success(c, result)
}

type liveFrameRequest struct {
	Image string `json:"image" binding:"required"`
}

func (s *HTTPGinServer) handleDetectLiveEmotion(c *gin.Context) {
	if s.deps.FaceAnalyzer == nil {
		s.error(c, http.StatusServiceUnavailable, "Face analysis is not enabled")
		return
	}

	var req liveFrameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	// 浏览器端发的是 data URL,去掉前缀后按 base64 解码
	payload := req.Image
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		s.error(c, http.StatusBadRequest, "Invalid base64 image payload")
		return
	}

	result, err := s.deps.FaceAnalyzer.AnalyzeImage(c.Request.Context(), data)
	if err != nil {
		logx.Error("Live frame detection failed: %v", err)
		s.error(c, http.StatusInternalServerError, "Failed to analyze frame")
		return
	}

	s.success(c, result)
}
