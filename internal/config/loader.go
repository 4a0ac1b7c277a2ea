package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultPort       = 8080
	DefaultJob        = "jenkins-demo"
	DefaultTimeout    = 30 * time.Second
	DefaultBranch     = "unknown"
	DefaultAppVersion = "1.0.0"
)

// flagKeys 命令行参数名到配置键的映射
var flagKeys = map[string]string{
	"url":      "jenkins.url",
	"username": "jenkins.username",
	"token":    "jenkins.token",
	"timeout":  "jenkins.timeout",
}

// LoadConfig 加载配置
// 优先级: 命令行参数 > 环境变量 > 配置文件 > 默认值
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.jenkins-demo")
	}

	// jenkins.url -> JENKINS_URL, server.debug -> SERVER_DEBUG
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT: %w", err)
	}

	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logx.Debug("No config file found, using env and defaults")
	} else {
		logx.Debug("Config file loaded, path %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	expandEnvVars(&config)

	return &config, nil
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.debug", false)

	v.SetDefault("jenkins.url", "")
	v.SetDefault("jenkins.username", "")
	v.SetDefault("jenkins.token", "")
	v.SetDefault("jenkins.job", DefaultJob)
	v.SetDefault("jenkins.timeout", DefaultTimeout)
}

// expandEnvVars 展开配置文件中的 ${VAR} 引用
func expandEnvVars(config *Config) {
	config.Jenkins.URL = os.ExpandEnv(config.Jenkins.URL)
	config.Jenkins.Username = os.ExpandEnv(config.Jenkins.Username)
	config.Jenkins.Token = os.ExpandEnv(config.Jenkins.Token)
}
