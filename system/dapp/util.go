// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/zemyblue/finschia-lottery/common/db"
	"github.com/zemyblue/finschia-lottery/types"
)

//KVCreator 创建KV的辅助工具，写入 statedb 的同时记录到回执
type KVCreator struct {
	kvs  []*types.KeyValue
	kvdb db.KV
	err  error
}

//NewKVCreator 创建创建者
func NewKVCreator(kv db.KV) *KVCreator {
	return &KVCreator{kvdb: kv}
}

func (c *KVCreator) add(key, value []byte, set bool) *KVCreator {
	c.kvs = append(c.kvs, &types.KeyValue{Key: key, Value: value})
	if set && c.err == nil {
		c.err = c.kvdb.Set(key, value)
	}
	return c
}

//Add add and set to kvdb
func (c *KVCreator) Add(key, value []byte) *KVCreator {
	return c.add(key, value, true)
}

//AddEncode 编码后写入
func (c *KVCreator) AddEncode(key []byte, value types.Message) *KVCreator {
	return c.add(key, types.Encode(value), true)
}

//AddKV only add KV
func (c *KVCreator) AddKV(key, value []byte) *KVCreator {
	return c.add(key, value, false)
}

//Error 第一个写入错误
func (c *KVCreator) Error() error {
	return c.err
}

//KVList 读取所有的kv列表
func (c *KVCreator) KVList() []*types.KeyValue {
	return c.kvs
}
