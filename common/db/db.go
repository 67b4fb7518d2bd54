// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 状态数据库的存储接口以及 memdb/goleveldb/gobadgerdb 三种后端
package db

import (
	"bytes"
	"errors"
	"sort"

	"github.com/zemyblue/finschia-lottery/common/log"
)

var dlog = log.New("module", "db")

// ErrNotFoundInDb 键不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// Lister 列表查询
type Lister interface {
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
	PrefixCount(prefix []byte) int64
}

// KV 带事务的键值接口，执行器只能看到这个接口
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Begin()
	Rollback()
	Commit() error
}

// KVDB 可以列表查询的 KV
type KVDB interface {
	KV
	Lister
}

// IteratorDB 可迭代的数据库
type IteratorDB interface {
	// end 为空时迭代 start 前缀下的所有键，否则迭代 [start, end)
	Iterator(start []byte, end []byte, reserve bool) Iterator
}

// DB 存储后端
type DB interface {
	IteratorDB
	Get([]byte) ([]byte, error)
	Set([]byte, []byte) error
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

// Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// Iterator 迭代器，reserve 时 Rewind 指向最后一个键并倒序移动
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Prefix() []byte
	// Seek 正序时指向第一个 >= key 的键，倒序时指向最后一个 <= key 的键
	Seek(key []byte) bool
	Close()
}

//-----------------------------------------------------------------------------

// 后端名字
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 按后端名字创建数据库
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		dlog.Error("NewDB", "unknown backend", backend)
		return nil, errors.New("unknown db backend " + backend)
	}
	db, err := creator(name, dir, int(cache))
	if err != nil {
		dlog.Error("NewDB", "backend", backend, "err", err)
		return nil, err
	}
	return db, nil
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

func inRange(key, start, end []byte) bool {
	if end == nil {
		return bytes.HasPrefix(key, start)
	}
	return bytes.Compare(key, start) >= 0 && bytes.Compare(key, end) < 0
}

//-----------------------------------------------------------------------------

type kvPair struct {
	key   []byte
	value []byte
}

// sliceIt 在一份已排序的快照上迭代
type sliceIt struct {
	kvs     []kvPair
	index   int
	reserve bool
	prefix  []byte
	err     error
}

func newSliceIt(kvs []kvPair, prefix []byte, reserve bool, err error) *sliceIt {
	it := &sliceIt{kvs: kvs, prefix: prefix, reserve: reserve, err: err}
	it.Rewind()
	return it
}

func (it *sliceIt) Rewind() bool {
	if it.reserve {
		it.index = len(it.kvs) - 1
	} else {
		it.index = 0
	}
	return it.Valid()
}

func (it *sliceIt) Next() bool {
	if it.reserve {
		it.index--
	} else {
		it.index++
	}
	return it.Valid()
}

func (it *sliceIt) Valid() bool {
	return it.index >= 0 && it.index < len(it.kvs)
}

func (it *sliceIt) Seek(key []byte) bool {
	if it.reserve {
		it.index = sort.Search(len(it.kvs), func(i int) bool { return bytes.Compare(it.kvs[i].key, key) > 0 }) - 1
	} else {
		it.index = sort.Search(len(it.kvs), func(i int) bool { return bytes.Compare(it.kvs[i].key, key) >= 0 })
	}
	return it.Valid()
}

func (it *sliceIt) Key() []byte {
	return it.kvs[it.index].key
}

func (it *sliceIt) Value() []byte {
	return it.kvs[it.index].value
}

func (it *sliceIt) ValueCopy() []byte {
	return cloneByte(it.Value())
}

func (it *sliceIt) Error() error {
	return it.err
}

func (it *sliceIt) Prefix() []byte {
	return it.prefix
}

func (it *sliceIt) Close() {
	it.kvs = nil
}

// MapIteratorDB 把一个内存 map 当作只读的 IteratorDB，用于合并缓存和底层数据后做列表查询
type MapIteratorDB map[string][]byte

// Iterator 迭代时对 map 做一次排序快照
func (m MapIteratorDB) Iterator(start []byte, end []byte, reserve bool) Iterator {
	kvs := make([]kvPair, 0, len(m))
	for k, v := range m {
		key := []byte(k)
		if inRange(key, start, end) {
			kvs = append(kvs, kvPair{key: key, value: v})
		}
	}
	sort.Slice(kvs, func(i, j int) bool { return bytes.Compare(kvs[i].key, kvs[j].key) < 0 })
	return newSliceIt(kvs, start, reserve, nil)
}
