package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RecoveryAshes/PdfLinkFind/internal/utils"
	"github.com/spf13/viper"
)

// Config 应用程序配置
// 输入/输出路径固定,不在配置范围内
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Report  ReportConfig  `mapstructure:"report"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level        string         `mapstructure:"level"`
	ConsoleLevel string         `mapstructure:"console_level"`
	LogDir       string         `mapstructure:"log_dir"`
	Rotation     RotationConfig `mapstructure:"rotation"`
}

// RotationConfig 日志轮转配置
type RotationConfig struct {
	MaxSize    int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAge     int  `mapstructure:"max_age"`
	Compress   bool `mapstructure:"compress"`
}

// ReportConfig 输出配置
type ReportConfig struct {
	Progress bool `mapstructure:"progress"` // 是否显示扫描进度条
}

// LoadConfig 加载配置文件
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath("./configs")
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".pdflinkfind"))
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// 配置文件不存在时使用默认值
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	return &config, nil
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	defaults := utils.DefaultLogConfig()

	v.SetDefault("logging.level", defaults.Level)
	v.SetDefault("logging.console_level", defaults.ConsoleLevel)
	v.SetDefault("logging.log_dir", defaults.LogDir)
	v.SetDefault("logging.rotation.max_size", defaults.MaxSize)
	v.SetDefault("logging.rotation.max_backups", defaults.MaxBackups)
	v.SetDefault("logging.rotation.max_age", defaults.MaxAge)
	v.SetDefault("logging.rotation.compress", defaults.Compress)

	v.SetDefault("report.progress", true)
}

// LogConfig 转换为日志系统配置
func (c *Config) LogConfig() utils.LogConfig {
	return utils.LogConfig{
		Level:        c.Logging.Level,
		ConsoleLevel: c.Logging.ConsoleLevel,
		LogDir:       c.Logging.LogDir,
		MaxSize:      c.Logging.Rotation.MaxSize,
		MaxBackups:   c.Logging.Rotation.MaxBackups,
		MaxAge:       c.Logging.Rotation.MaxAge,
		Compress:     c.Logging.Rotation.Compress,
	}
}
