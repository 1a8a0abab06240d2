package config

import (
	"errors"
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Load 读取 config/{name}.yaml 并反序列化到 out
// 找不到配置文件时只使用 defaults + 环境变量，不算错误
func Load(name string, defaults map[string]any, out interface{}) (*viper.Viper, error) {
	v := viper.New()
	// 约定：config/{name}.yaml
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	// 环境变量覆盖，例如 DRILLS_LOG_LEVEL 覆盖 log.level
	v.SetEnvPrefix(strings.ToUpper(name))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Printf("[%s] no config file, using defaults", name)
	} else {
		log.Printf("[%s] config loaded from %s", name, v.ConfigFileUsed())
	}

	if err := v.Unmarshal(out); err != nil {
		return nil, err
	}
	return v, nil
}

// Watch 监听文件变更，热更新到 out，成功后回调 onChange
func Watch(v *viper.Viper, name string, out interface{}, onChange func()) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("[%s] config file changed: %s", name, e.Name)
		if err := v.Unmarshal(out); err != nil {
			log.Printf("[%s] reload config error: %v", name, err)
			return
		}
		if onChange != nil {
			onChange()
		}
	})
	v.WatchConfig()
}
