// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// 交易执行结果
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// 框架日志类型
const (
	TyLogErr      = 1
	TyLogFee      = 2
	TyLogTransfer = 3
	TyLogGenesis  = 4
	TyLogDeposit  = 5
)

// KeyValue 状态数据库的一次写入
type KeyValue struct {
	Key   []byte
	Value []byte
}

// Attribute 事件属性
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewAttribute new
func NewAttribute(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// ReceiptLog 交易日志，Ty 标识日志种类
type ReceiptLog struct {
	Ty         int32       `json:"ty"`
	Attributes []Attribute `json:"attributes"`
}

// Get returns the value of the first attribute named key
func (l *ReceiptLog) Get(key string) (string, bool) {
	for _, attr := range l.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Transfer 资产转移指令，由宿主在交易提交之后执行
type Transfer struct {
	Denom  string `json:"denom"`
	From   string `json:"from"`
	To     string `json:"to"`
	Amount Amount `json:"amount"`
}

// Receipt 交易执行回执
type Receipt struct {
	Ty        int32
	KV        []*KeyValue
	Logs      []*ReceiptLog
	Transfers []*Transfer
}

// MergeReceipt merge receipt2 into receipt1
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt2 == nil {
		return receipt1
	}
	if receipt1 == nil {
		return receipt2
	}
	receipt1.KV = append(receipt1.KV, receipt2.KV...)
	receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	receipt1.Transfers = append(receipt1.Transfers, receipt2.Transfers...)
	return receipt1
}

// FindLogs returns the logs of type ty in order
func (r *Receipt) FindLogs(ty int32) []*ReceiptLog {
	if r == nil {
		return nil
	}
	var logs []*ReceiptLog
	for _, l := range r.Logs {
		if l.Ty == ty {
			logs = append(logs, l)
		}
	}
	return logs
}
