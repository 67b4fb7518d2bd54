// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

// GoMemDB 基于 goleveldb memdb 的内存数据库，测试和本地单节点使用
type GoMemDB struct {
	db *memdb.DB
}

// NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	// memdb 不需要创建文件
	if cache <= 0 {
		cache = 1
	}
	return &GoMemDB{db: memdb.New(comparer.DefaultComparer, cache*1024)}, nil
}

// Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	v, err := db.db.Get(key)
	if err != nil {
		return nil, ErrNotFoundInDb
	}
	return cloneByte(v), nil
}

// Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	if value == nil {
		return db.Delete(key)
	}
	return db.db.Put(key, value)
}

// SetSync 同 Set
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete 删除不存在的键不报错
func (db *GoMemDB) Delete(key []byte) error {
	err := db.db.Delete(key)
	if err == memdb.ErrNotFound {
		return nil
	}
	return err
}

// DeleteSync 同 Delete
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// Close close
func (db *GoMemDB) Close() {
	db.db.Reset()
}

// Stats 统计
func (db *GoMemDB) Stats() map[string]string {
	return map[string]string{
		"memdb.len":  itoa(db.db.Len()),
		"memdb.size": itoa(db.db.Size()),
	}
}

// Iterator 迭代器
func (db *GoMemDB) Iterator(start []byte, end []byte, reserve bool) Iterator {
	r := &util.Range{Start: start, Limit: end}
	if end == nil {
		r = util.BytesPrefix(start)
	}
	return newGoLevelDBIt(db.db.NewIterator(r), start, reserve)
}

// NewBatch 批量写
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type kv struct{ k, v []byte }

type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value)})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
	b.size++
}

func (b *memBatch) Write() error {
	for _, kv := range b.writes {
		var err error
		if kv.v == nil {
			err = b.db.Delete(kv.k)
		} else {
			err = b.db.Set(kv.k, kv.v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
