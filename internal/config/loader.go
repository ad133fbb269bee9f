package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig 从YAML文件加载配置,支持环境变量覆盖
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 设置配置文件
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		// 默认配置文件搜索路径
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.emotichat")
		v.AddConfigPath("/etc/emotichat")
	}

	// 支持环境变量
	v.SetEnvPrefix("EMOTICHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 设置默认值
	setDefaults(v)

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		// 如果是找不到配置文件,则使用默认配置
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 解析配置
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 替换环境变量
	expandEnvVars(&config)

	return &config, nil
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	// Server 默认配置
	v.SetDefault("server.http.port", 8080)
	v.SetDefault("server.http.debug", false)

	// Database 默认配置
	v.SetDefault("database.path", "./data/emotichat.db")

	// LLM 默认配置
	v.SetDefault("llm.enabled", true)
	v.SetDefault("llm.model", "llama-3.1-8b-instant")
	v.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")

	// Translate 默认配置
	v.SetDefault("translate.enabled", true)
	v.SetDefault("translate.endpoint", "https://translate.googleapis.com/translate_a/single")
	v.SetDefault("translate.timeout_seconds", 10)

	// Vision 默认配置
	v.SetDefault("vision.enabled", false)
	v.SetDefault("vision.base_url", "http://127.0.0.1:5005")
	v.SetDefault("vision.timeout_seconds", 30)
	v.SetDefault("vision.frame_stride", 20)
	v.SetDefault("vision.ffmpeg_path", "ffmpeg")

	// Cache 默认配置
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "127.0.0.1:6379")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 300)

	// Session 默认配置
	v.SetDefault("session.timeout_hours", 24)

	// Export 默认配置
	v.SetDefault("export.domain_name", "EmotiChat")
}

// expandEnvVars 展开配置中引用的环境变量
func expandEnvVars(config *Config) {
	config.LLM.APIKey = os.ExpandEnv(config.LLM.APIKey)
	config.Cache.Password = os.ExpandEnv(config.Cache.Password)
}
