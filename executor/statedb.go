// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/zemyblue/finschia-lottery/common/db"
	"github.com/zemyblue/finschia-lottery/types"
)

// StateDB 执行器看到的状态数据库
//
// 交易内的写入先进入 txcache，Commit 后并入 cache，Rollback 直接丢弃；
// Flush 把 cache 一次性批量写入底层数据库。缓存中的 nil 值表示删除。
type StateDB struct {
	db      db.DB
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
}

// NewStateDB new state db
func NewStateDB(backing db.DB) *StateDB {
	return &StateDB{
		db:    backing,
		cache: make(map[string][]byte),
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 事务内的写入并入 cache
func (s *StateDB) Commit() error {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
	return nil
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return found(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return found(value)
	}
	value, err := s.db.Get(key)
	if err == db.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	return value, err
}

func found(value []byte) ([]byte, error) {
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// Set set key value to state db, value 为 nil 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if value != nil {
		value = append([]byte{}, value...)
	}
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// GetSetKeys  当前事务写过的 key
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// List 合并底层数据库、cache 和 txcache 之后的列表查询
func (s *StateDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return db.NewListHelper(s.merged(prefix)).List(prefix, key, count, direction)
}

// PrefixCount 合并之后指定前缀的 key 的数量
func (s *StateDB) PrefixCount(prefix []byte) int64 {
	return int64(len(s.merged(prefix)))
}

func (s *StateDB) merged(prefix []byte) db.MapIteratorDB {
	merged := make(db.MapIteratorDB)
	db.NewListHelper(s.db).IteratorCallback(prefix, nil, 0, db.ListASC, func(key, value []byte) bool {
		merged[string(key)] = value
		return false
	})
	overlay(merged, s.cache, prefix)
	if s.intx {
		overlay(merged, s.txcache, prefix)
	}
	return merged
}

func overlay(merged db.MapIteratorDB, cache map[string][]byte, prefix []byte) {
	p := string(prefix)
	for k, v := range cache {
		if len(k) < len(p) || k[:len(p)] != p {
			continue
		}
		if v == nil {
			delete(merged, k)
		} else {
			merged[k] = v
		}
	}
}

// Flush 把已经提交的 cache 和额外的 kv 在一个批次里写入底层数据库
func (s *StateDB) Flush(extra ...*types.KeyValue) error {
	if s.intx {
		return types.ErrNotAllow
	}
	batch := s.db.NewBatch(true)
	for k, v := range s.cache {
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	for _, kv := range extra {
		batch.Set(kv.Key, kv.Value)
	}
	if err := batch.Write(); err != nil {
		return err
	}
	s.cache = make(map[string][]byte)
	return nil
}
