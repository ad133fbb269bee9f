package config

// Config 应用配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Translate TranslateConfig `mapstructure:"translate"`
	Vision    VisionConfig    `mapstructure:"vision"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Session   SessionConfig   `mapstructure:"session"`
	Export    ExportConfig    `mapstructure:"export"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTP HTTPConfig `mapstructure:"http"`
}

// HTTPConfig HTTP 服务器配置
type HTTPConfig struct {
	Port  int  `mapstructure:"port"`
	Debug bool `mapstructure:"debug"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LLMConfig 远程大模型配置
// Groq 提供 OpenAI 兼容接口,BaseURL 指向 https://api.groq.com/openai/v1
type LLMConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// TranslateConfig 翻译服务配置
type TranslateConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Endpoint       string `mapstructure:"endpoint"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// VisionConfig 人脸情绪识别后端配置
type VisionConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	FrameStride    int    `mapstructure:"frame_stride"`
	FFmpegPath     string `mapstructure:"ffmpeg_path"`
}

// CacheConfig 会话缓存配置(Redis)
type CacheConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTL      int    `mapstructure:"ttl"`
}

// SessionConfig 会话配置
type SessionConfig struct {
	TimeoutHours int `mapstructure:"timeout_hours"`
}

// ExportConfig 报表导出配置
type ExportConfig struct {
	DomainName string `mapstructure:"domain_name"`
}
