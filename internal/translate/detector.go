package translate

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// supportedLanguages 参与识别的语言集合,与静态话术表覆盖的语言一致
var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Russian,
	lingua.Japanese,
	lingua.Korean,
	lingua.Chinese,
	lingua.Arabic,
	lingua.Hindi,
}

// languageCodes lingua 语言到 ISO 代码的映射,中文统一记为 zh-cn
var languageCodes = map[lingua.Language]string{
	lingua.English:    "en",
	lingua.Spanish:    "es",
	lingua.French:     "fr",
	lingua.German:     "de",
	lingua.Italian:    "it",
	lingua.Portuguese: "pt",
	lingua.Russian:    "ru",
	lingua.Japanese:   "ja",
	lingua.Korean:     "ko",
	lingua.Chinese:    "zh-cn",
	lingua.Arabic:     "ar",
	lingua.Hindi:      "hi",
}

// languageNames 代码到英文名称的映射,用于提示词里的语言指令
var languageNames = map[string]string{
	"en":    "English",
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"it":    "Italian",
	"pt":    "Portuguese",
	"ru":    "Russian",
	"ja":    "Japanese",
	"ko":    "Korean",
	"zh-cn": "Chinese (Simplified)",
	"ar":    "Arabic",
	"hi":    "Hindi",
}

// LanguageName 返回语言代码对应的英文名称,未知代码原样返回
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// 构建代价较高,进程内只建一次
func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(supportedLanguages...).
			Build()
	})
	return detector
}

// DetectLanguage 识别文本语言,返回语言代码与名称
// 文本过短或无法判定时按英语处理
func DetectLanguage(text string) (code string, name string) {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < 3 {
		return "en", "English"
	}

	lang, ok := getDetector().DetectLanguageOf(trimmed)
	if !ok {
		return "en", "English"
	}
	code, ok = languageCodes[lang]
	if !ok {
		return "en", "English"
	}
	return code, LanguageName(code)
}
