// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//Config 配置
type Config struct {
	Title string `json:"title,omitempty"`
	Log   *Log   `json:"log,omitempty"`
	Store *Store `json:"store,omitempty"`
	Exec  *Exec  `json:"exec,omitempty"`
}

//Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `json:"loglevel,omitempty"`
	LogConsoleLevel string `json:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `json:"logFile,omitempty"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `json:"maxFileSize,omitempty"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `json:"maxBackups,omitempty"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `json:"maxAge,omitempty"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `json:"localTime,omitempty"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `json:"compress,omitempty"`
	// 是否打印调用源文件和行号
	CallerFile bool `json:"callerFile,omitempty"`
	// 是否打印调用方法
	CallerFunction bool `json:"callerFunction,omitempty"`
}

//Store 状态和本地数据库配置
type Store struct {
	Name    string `json:"name,omitempty"`
	Driver  string `json:"driver,omitempty"`
	DbPath  string `json:"dbPath,omitempty"`
	DbCache int32  `json:"dbCache,omitempty"`
}

//Exec 执行器配置
type Exec struct {
	EnableMetrics bool `json:"enableMetrics,omitempty"`
	//MetricsInterval 指标输出到日志的间隔(秒), 0 表示不定时输出
	MetricsInterval int64 `json:"metricsInterval,omitempty"`
	//EnableAddrIndex 保存地址相关的交易索引, 只能在高度 0 开启
	EnableAddrIndex bool `json:"enableAddrIndex,omitempty"`
}

//ConfigSubModule 子模块的配置, 以 json 格式保存, 由子模块自己解析
type ConfigSubModule struct {
	Store map[string][]byte
	Exec  map[string][]byte
}

// subModule 子模块结构体
type subModule struct {
	Store map[string]interface{}
	Exec  map[string]interface{}
}

//NewConfig 解析 toml 格式的配置
func NewConfig(cfgstring string) (*Config, *ConfigSubModule, error) {
	cfg, err := initCfgString(cfgstring)
	if err != nil {
		return nil, nil, errors.Wrap(err, "NewConfig")
	}
	sub, err := initSubModuleString(cfgstring)
	if err != nil {
		return nil, nil, errors.Wrap(err, "NewConfig sub module")
	}
	fillDefaultConfig(cfg)
	return cfg, sub, nil
}

// InitCfgString 初始化配置, 失败时 panic
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule) {
	cfg, sub, err := NewConfig(cfgstring)
	if err != nil {
		panic(err)
	}
	return cfg, sub
}

// ReadConfigFile 读取配置文件
func ReadConfigFile(path string) (*Config, *ConfigSubModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "ReadConfigFile %s", path)
	}
	return NewConfig(string(data))
}

// InitCfg 初始化配置, 失败时 panic
func InitCfg(path string) (*Config, *ConfigSubModule) {
	cfg, sub, err := ReadConfigFile(path)
	if err != nil {
		panic(err)
	}
	return cfg, sub
}

//DefaultConfig 默认配置, 内存数据库
func DefaultConfig() (*Config, *ConfigSubModule) {
	return InitCfgString(DefaultCfgString)
}

func initCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func fillDefaultConfig(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memdb"
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "lottery"
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
}

func initSubModuleString(cfgstring string) (*ConfigSubModule, error) {
	var cfg subModule
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, err
	}
	return parseSubModule(&cfg)
}

func parseSubModule(cfg *subModule) (*ConfigSubModule, error) {
	var subcfg ConfigSubModule
	var err error
	subcfg.Store, err = parseItem(cfg.Store)
	if err != nil {
		return nil, err
	}
	subcfg.Exec, err = parseItem(cfg.Exec)
	if err != nil {
		return nil, err
	}
	return &subcfg, nil
}

//ModifySubConfig json data modify
func ModifySubConfig(sub []byte, key string, value interface{}) ([]byte, error) {
	data := make(map[string]interface{})
	if len(sub) > 0 {
		err := json.Unmarshal(sub, &data)
		if err != nil {
			return nil, err
		}
	}
	data[key] = value
	return json.Marshal(data)
}

func parseItem(data map[string]interface{}) (map[string][]byte, error) {
	subconfig := make(map[string][]byte)
	if len(data) == 0 {
		return subconfig, nil
	}
	sub, ok := data["sub"]
	if !ok {
		return subconfig, nil
	}
	subcfg, ok := sub.(map[string]interface{})
	if !ok {
		return nil, errors.Wrap(ErrInvalidParam, "sub config is not a table")
	}
	for k := range subcfg {
		b, err := json.Marshal(subcfg[k])
		if err != nil {
			return nil, err
		}
		subconfig[k] = b
	}
	return subconfig, nil
}

//MustDecodeSubConfig 解析子模块配置, 配置为空时保持默认值
func MustDecodeSubConfig(sub []byte, v interface{}) {
	MustDecode(sub, v)
}
