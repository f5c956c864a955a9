// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//DefaultCfgString 默认配置, 用于测试和本地运行
var DefaultCfgString = `
Title="local"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "debug"
logConsoleLevel = "info"
# 日志文件名，可带目录，所有生成的日志文件都放到此目录下, 为空时只输出到控制台
logFile = ""
# 单个日志文件的最大值（单位：兆）
maxFileSize = 300
# 最多保存的历史日志文件个数
maxBackups = 100
# 最多保存的历史日志消息（单位：天）
maxAge = 28
# 日志文件名是否使用本地事件（否则使用UTC时间）
localTime = true
# 历史日志文件是否压缩（压缩格式为gz）
compress = true
# 是否打印调用源文件和行号
callerFile = false
# 是否打印调用方法
callerFunction = false

[store]
name="lottery"
# 数据库类型, 支持 memdb, leveldb, goleveldb, gobadgerdb
driver="memdb"
dbPath="datadir"
dbCache=64

[exec]
enableMetrics=true
metricsInterval=0
# 地址相关的交易索引
enableAddrIndex=true

[exec.sub.lottery]
# 彩票单价
ticketPrice=1000000
# 每一期最多销售的彩票数
maxTickets=100
# 创建彩票时需要预留的最低余额
reservedMinimum=23677920
# 开奖方式: block 或者 fixed
drawer="block"
fixedNumbers=[]
`
