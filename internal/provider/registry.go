package provider

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory 创建一个新的 CICD Provider 实例
type Factory func() CICDProvider

var (
	// cicdFactories 存储所有已注册的 CICD Provider 构造函数
	cicdFactories = make(map[string]Factory)
	mu            sync.RWMutex
)

// RegisterCICD 注册一个 CICD Provider
func RegisterCICD(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	if factory == nil {
		panic("provider: Register CICD provider is nil")
	}
	if _, dup := cicdFactories[name]; dup {
		panic("provider: Register called twice for CICD provider " + name)
	}
	cicdFactories[name] = factory
}

// GetCICDProvider 获取指定名称的 CICD Provider,每次返回新实例
func GetCICDProvider(name string) (CICDProvider, error) {
	mu.RLock()
	defer mu.RUnlock()
	factory, ok := cicdFactories[name]
	if !ok {
		return nil, fmt.Errorf("CICD provider %s not found, available: %s", name, strings.Join(providerNames(), ", "))
	}
	return factory(), nil
}

// providerNames 已注册的 Provider 名称,调用方需持有锁
func providerNames() []string {
	names := make([]string, 0, len(cicdFactories))
	for name := range cicdFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnregisterAll 清空所有已注册的 Provider (用于测试)
func UnregisterAll() {
	mu.Lock()
	defer mu.Unlock()
	cicdFactories = make(map[string]Factory)
}
