package emotion

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrEmptyText 文本为空
	ErrEmptyText = errors.New("Please enter a statement.")
	// ErrGibberish 文本被判定为乱码
	ErrGibberish = errors.New("No Emotion Detected. Please enter a valid statement.")
	// ErrNoEmotion 分类结果为高置信度 neutral,按无情绪处理
	ErrNoEmotion = errors.New("No Emotion Detected.")
)

// Validate 在任何推理调用之前校验输入文本
// 纯函数,无副作用
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if isGibberish(text) {
		return ErrGibberish
	}
	return nil
}

// isGibberish 乱码启发式判定
// 满足任一条件即视为乱码:
//  1. 去重后的字符数不超过2
//  2. 完全不含字母和空白字符
//  3. 元音数量少于 max(1, 0.2*文本长度)
//
// 阈值对短的非英语文本会误判,这是沿用的已知缺陷
func isGibberish(text string) bool {
	distinct := make(map[rune]struct{})
	for _, r := range text {
		distinct[r] = struct{}{}
	}
	if len(distinct) <= 2 {
		return true
	}

	hasLetterOrSpace := false
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			hasLetterOrSpace = true
			break
		}
	}
	if !hasLetterOrSpace {
		return true
	}

	vowelCount := 0
	for _, r := range text {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			vowelCount++
		}
	}
	minVowels := float64(len([]rune(text))) * 0.2
	if minVowels < 1 {
		minVowels = 1
	}
	return float64(vowelCount) < minVowels
}
