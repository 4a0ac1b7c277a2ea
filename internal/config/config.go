package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config 应用配置
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Jenkins JenkinsConfig `mapstructure:"jenkins"`
}

// ServerConfig demo HTTP 服务配置
type ServerConfig struct {
	Port  int  `mapstructure:"port"`
	Debug bool `mapstructure:"debug"`
}

// JenkinsConfig Jenkins 连接配置
type JenkinsConfig struct {
	URL      string        `mapstructure:"url"`
	Username string        `mapstructure:"username"`
	Token    string        `mapstructure:"token"`
	Job      string        `mapstructure:"job"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Validate 校验 Jenkins 配置
func (c *JenkinsConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("jenkins url is required (set JENKINS_URL or --url)")
	}
	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("jenkins url %q is not a valid absolute URL", c.URL)
	}
	if c.Username == "" {
		return fmt.Errorf("jenkins username is required (set JENKINS_USERNAME or --username)")
	}
	if c.Token == "" {
		return fmt.Errorf("jenkins token is required (set JENKINS_TOKEN or --token)")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("jenkins timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
