// Package xviper wraps viper with lazy loading of the product
// configuration file and write-through persistence, so that command
// code can just Get and Set.
package xviper

import (
	"sync"

	"github.com/spf13/viper"

	"github.com/auditkit/ossaudit/common"
)

type config struct {
	sync.Mutex
	loaded bool
	viper  *viper.Viper
}

var pipeline = &config{}

func (it *config) summon() *viper.Viper {
	it.Lock()
	defer it.Unlock()
	if !it.loaded {
		it.viper = viper.New()
		it.viper.SetConfigFile(common.ConfigFile())
		it.viper.SetConfigType("yaml")
		err := it.viper.ReadInConfig()
		if err != nil {
			common.Trace("Configuration %q not loaded: %v", common.ConfigFile(), err)
		}
		it.loaded = true
	}
	return it.viper
}

// Reset drops the cached configuration; tests use this after
// pointing the product home somewhere else.
func Reset() {
	pipeline.Lock()
	defer pipeline.Unlock()
	pipeline.loaded = false
	pipeline.viper = nil
}

func Set(key string, value interface{}) {
	handle := pipeline.summon()
	handle.Set(key, value)
	if _, err := common.EnsureHome(); err != nil {
		common.Error("config home", err)
		return
	}
	common.Error("config save", handle.WriteConfigAs(common.ConfigFile()))
}

func Get(key string) interface{} {
	return pipeline.summon().Get(key)
}

func GetString(key string) string {
	return pipeline.summon().GetString(key)
}

func GetInt(key string) int {
	return pipeline.summon().GetInt(key)
}

func GetBool(key string) bool {
	return pipeline.summon().GetBool(key)
}

func AllSettings() map[string]interface{} {
	return pipeline.summon().AllSettings()
}
