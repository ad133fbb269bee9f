package translate

import (
	"context"

	"cnb.cool/zhiqiangwang/pkg/logx"
)

// Service 语言识别加翻译的组合服务
// 翻译失败时保留原文继续流程,多语言能力整体降级而不是报错
type Service struct {
	translator *Translator
	enabled    bool
}

// NewService 创建翻译服务,translator 传 nil 或 enabled 为 false 时只做语言识别
func NewService(translator *Translator, enabled bool) *Service {
	return &Service{translator: translator, enabled: enabled && translator != nil}
}

// ToEnglish 识别语言并在需要时译成英文
// 返回参与分析的文本、语言代码、语言名称以及是否实际发生了翻译
func (s *Service) ToEnglish(ctx context.Context, text string) (analyzed string, langCode string, langName string, translated bool) {
	langCode, langName = DetectLanguage(text)
	if langCode == "en" || !s.enabled {
		return text, langCode, langName, false
	}

	result, err := s.translator.Translate(ctx, text, langCode, "en")
	if err != nil {
		logx.Warn("Translate to English failed, analyzing original text: %v", err)
		return text, langCode, langName, false
	}
	return result, langCode, langName, true
}

// ToLanguage 把英文文本译回目标语言,失败时返回原文
func (s *Service) ToLanguage(ctx context.Context, text, target string) string {
	if target == "" || target == "en" || !s.enabled {
		return text
	}
	result, err := s.translator.Translate(ctx, text, "en", target)
	if err != nil {
		logx.Warn("Translate to %s failed, returning English text: %v", target, err)
		return text
	}
	return result
}
