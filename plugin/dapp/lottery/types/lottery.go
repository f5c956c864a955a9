// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math/rand"
	"reflect"

	"github.com/33cn/lottery/types"
	log "github.com/inconshreveable/log15"
)

var (
	llog = log.New("module", "exectype."+LotteryX)

	actionTypeMap = map[string]int32{
		"Init":     LotteryActionInit,
		"Purchase": LotteryActionPurchase,
		"Draw":     LotteryActionDraw,
		"Claim":    LotteryActionClaim,
	}

	logMap = map[int64]*types.LogInfo{
		TyLogLotteryInit:     {Ty: reflect.TypeOf(ReceiptLottery{}), Name: "LogLotteryInit"},
		TyLogLotteryPurchase: {Ty: reflect.TypeOf(ReceiptLottery{}), Name: "LogLotteryPurchase"},
		TyLogLotteryDraw:     {Ty: reflect.TypeOf(ReceiptLottery{}), Name: "LogLotteryDraw"},
		TyLogLotteryClaim:    {Ty: reflect.TypeOf(ReceiptLottery{}), Name: "LogLotteryClaim"},
	}

	lotteryType = NewType()
)

func init() {
	types.RegistorExecutor(LotteryX, lotteryType)
}

//LotteryType lottery 执行器类型
type LotteryType struct {
	types.ExecTypeBase
}

//NewType new lottery type
func NewType() *LotteryType {
	c := &LotteryType{}
	c.SetChild(c)
	return c
}

//GetName 执行器名称
func (lott *LotteryType) GetName() string {
	return LotteryX
}

//GetPayload payload
func (lott *LotteryType) GetPayload() types.Message {
	return &LotteryAction{}
}

//GetTypeMap action 列表
func (lott *LotteryType) GetTypeMap() map[string]int32 {
	return actionTypeMap
}

//GetLogMap log 列表
func (lott *LotteryType) GetLogMap() map[int64]*types.LogInfo {
	return logMap
}

//Config lottery 执行器的配置, 对应 [exec.sub.lottery]
type Config struct {
	TicketPrice     int64   `json:"ticketPrice,omitempty"`
	MaxTickets      uint32  `json:"maxTickets,omitempty"`
	ReservedMinimum int64   `json:"reservedMinimum,omitempty"`
	Drawer          string  `json:"drawer,omitempty"`
	FixedNumbers    []int32 `json:"fixedNumbers,omitempty"`
}

//DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		TicketPrice:     DefaultTicketPrice,
		MaxTickets:      DefaultMaxTickets,
		ReservedMinimum: DefaultReservedMinimum,
		Drawer:          "block",
	}
}

//ParseConfig 解析子配置, 没有填写的项使用默认值, 格式错误时 panic
func ParseConfig(sub []byte) *Config {
	cfg := DefaultConfig()
	if len(sub) == 0 {
		return cfg
	}
	var in Config
	types.MustDecodeSubConfig(sub, &in)
	if in.TicketPrice > 0 {
		cfg.TicketPrice = in.TicketPrice
	}
	if in.MaxTickets > 0 {
		cfg.MaxTickets = in.MaxTickets
	}
	if cfg.MaxTickets > MaxTicketsLimit {
		llog.Warn("ParseConfig maxTickets too large", "maxTickets", cfg.MaxTickets, "limit", MaxTicketsLimit)
		cfg.MaxTickets = MaxTicketsLimit
	}
	if in.ReservedMinimum > 0 {
		cfg.ReservedMinimum = in.ReservedMinimum
	}
	if in.Drawer != "" {
		cfg.Drawer = in.Drawer
	}
	cfg.FixedNumbers = in.FixedNumbers
	return cfg
}

func createTx(action string, data types.Message, from string) (*types.Transaction, error) {
	tx, err := lotteryType.CreateTransaction(action, data)
	if err != nil {
		llog.Error("createTx", "action", action, "err", err)
		return nil, err
	}
	tx.Sender = from
	tx.Nonce = rand.Int63()
	return tx, nil
}

//NewInitTx 创建一期彩票
func NewInitTx(from string, id uint64) (*types.Transaction, error) {
	return createTx("Init", &LotteryInit{Id: id}, from)
}

//NewPurchaseTx 购买彩票
func NewPurchaseTx(from string, id uint64, numbers []int32) (*types.Transaction, error) {
	return createTx("Purchase", &LotteryPurchase{Id: id, Numbers: numbers}, from)
}

//NewDrawTx 开奖
func NewDrawTx(from string, id uint64) (*types.Transaction, error) {
	return createTx("Draw", &LotteryDraw{Id: id}, from)
}

//NewClaimTx 领奖
func NewClaimTx(from string, id uint64) (*types.Transaction, error) {
	return createTx("Claim", &LotteryClaim{Id: id}, from)
}
