// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 节点配置
type Config struct {
	Title   string   `toml:"Title"`
	Log     *Log     `toml:"log"`
	Store   *Store   `toml:"store"`
	Exec    *Exec    `toml:"exec"`
	Metrics *Metrics `toml:"metrics"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Store 状态数据库配置
type Store struct {
	Name    string `toml:"name"`
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// Exec 执行器配置
type Exec struct {
	// 交易发送方必须是合法的 base58 地址
	StrictAddress bool `toml:"strictAddress"`
}

// Metrics 指标配置
type Metrics struct {
	EnableMetrics bool   `toml:"enableMetrics"`
	DataEmitMode  string `toml:"dataEmitMode"`
}

// ConfigSubModule 子模块配置，按名字保存 json 编码的配置
type ConfigSubModule struct {
	Exec map[string][]byte
}

type subModule struct {
	Exec map[string]interface{}
}

// InitCfg 从文件读取配置
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	var cfg Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, nil, errors.Wrapf(err, "decode config %s", path)
	}
	var sub subModule
	if _, err := tml.DecodeFile(path, &sub); err != nil {
		return nil, nil, errors.Wrapf(err, "decode sub config %s", path)
	}
	fillDefault(&cfg)
	return &cfg, &ConfigSubModule{Exec: parseItem(sub.Exec)}, nil
}

// InitCfgString 从字符串读取配置
func InitCfgString(data string) (*Config, *ConfigSubModule, error) {
	var cfg Config
	if _, err := tml.Decode(data, &cfg); err != nil {
		return nil, nil, errors.Wrap(err, "decode config")
	}
	var sub subModule
	if _, err := tml.Decode(data, &sub); err != nil {
		return nil, nil, errors.Wrap(err, "decode sub config")
	}
	fillDefault(&cfg)
	return &cfg, &ConfigSubModule{Exec: parseItem(sub.Exec)}, nil
}

// MustInitCfgString for tests and built-in defaults
func MustInitCfgString(data string) (*Config, *ConfigSubModule) {
	cfg, sub, err := InitCfgString(data)
	if err != nil {
		panic(err)
	}
	return cfg, sub
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "lotterystate"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memdb"
	}
	if cfg.Store.DbCache == 0 {
		cfg.Store.DbCache = 128
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
}

// [exec.sub.lottery] 这样的子表按名字转为 json
func parseItem(data map[string]interface{}) map[string][]byte {
	subconfig := make(map[string][]byte)
	if len(data) == 0 {
		return subconfig
	}
	for key := range data {
		if key == "sub" {
			subcfg, ok := data[key].(map[string]interface{})
			if !ok {
				continue
			}
			for k := range subcfg {
				subconfig[k], _ = json.Marshal(subcfg[k])
			}
		}
	}
	return subconfig
}

// DefaultCfgString 本地单节点的默认配置
func DefaultCfgString() string {
	return `
Title="local"

[log]
loglevel="info"
logConsoleLevel="info"
logFile=""
maxFileSize=300
maxBackups=100
maxAge=28
localTime=true
compress=true
callerFile=false
callerFunction=false

[store]
name="lotterystate"
driver="memdb"
dbPath="datadir"
dbCache=128

[exec]
strictAddress=false

[exec.sub.coins]
genesisAddr=""

[exec.sub.lottery]
useDenom="cony"
exchangeRatio=10
minExchangeAmount=200000000
firstWinnerRatio=60
secondWinnerRatio=20
ownerRatio=2
tokenName="lottery"
tokenSymbol="LTT"
tokenDecimals=6
selectIndices=[7, 8]

[metrics]
enableMetrics=false
dataEmitMode=""
`
}
