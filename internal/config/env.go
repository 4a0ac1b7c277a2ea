package config

import (
	"github.com/spf13/viper"
)

// AppEnv 在请求时读取 demo 服务的运行环境变量
// 每次调用都会重新读取进程环境,空值回退到默认值
type AppEnv struct {
	v *viper.Viper
}

// NewAppEnv 创建 AppEnv
func NewAppEnv() *AppEnv {
	v := viper.New()
	// 显式指定的环境变量名不会被转换为大写
	_ = v.BindEnv("branch", "branch")
	_ = v.BindEnv("version", "VERSION")
	v.SetDefault("branch", DefaultBranch)
	v.SetDefault("version", DefaultAppVersion)
	return &AppEnv{v: v}
}

// Branch 当前分支,默认 unknown
func (e *AppEnv) Branch() string {
	return e.v.GetString("branch")
}

// Version 应用版本,默认 1.0.0
func (e *AppEnv) Version() string {
	return e.v.GetString("version")
}
