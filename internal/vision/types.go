package vision

// BoundingBox 人脸在画面中的位置
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
}

// FaceResult 单张图片的人脸情绪分析结果
type FaceResult struct {
	FaceDetected bool               `json:"face_detected"`
	Label        string             `json:"emotion,omitempty"`
	Confidence   float64            `json:"confidence,omitempty"`
	Scores       map[string]float64 `json:"scores,omitempty"`
	Box          *BoundingBox       `json:"box,omitempty"`
	// 最高两项得分差距过小的时候置位,并给出第二名
	IsAmbiguous bool   `json:"is_ambiguous,omitempty"`
	RunnerUp    string `json:"runner_up,omitempty"`
}

// FrameResult 视频单帧的分析结果
type FrameResult struct {
	FrameIndex int     `json:"frame_index"`
	Label      string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// VideoResult 整段视频的汇总结果
// Label 取各采样帧的众数,Confidence 是同标签帧的平均置信度
type VideoResult struct {
	Label          string         `json:"dominant_emotion"`
	Confidence     float64        `json:"confidence"`
	FramesTotal    int            `json:"frames_total"`
	FramesSampled  int            `json:"frames_sampled"`
	FramesWithFace int            `json:"frames_with_face"`
	LabelCounts    map[string]int `json:"label_counts"`
	Frames         []FrameResult  `json:"frames,omitempty"`
}
