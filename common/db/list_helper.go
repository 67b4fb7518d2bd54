// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
)

//ListHelper ...
type ListHelper struct {
	db IteratorDB
}

var listlog = dlog.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//PrefixScan 前缀
func (db *ListHelper) PrefixScan(prefix []byte) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("PrefixScan it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
	}
	return values
}

//List 列表，key 为空时从头或者从尾开始；否则从 key 之后开始，不包含 key 本身。count <= 0 表示不限数量
func (db *ListHelper) List(prefix, key []byte, count, direction int32) (values [][]byte, err error) {
	reserve := direction == ListDESC
	it := db.db.Iterator(prefix, nil, reserve)
	defer it.Close()

	if len(key) == 0 {
		it.Rewind()
	} else if it.Seek(key) && bytes.Equal(it.Key(), key) {
		it.Next()
	}
	var i int32
	for ; it.Valid(); it.Next() {
		values = append(values, it.ValueCopy())
		i++
		if i == count {
			break
		}
	}
	if it.Error() != nil {
		listlog.Error("List", "prefix", string(prefix), "error", it.Error())
		return nil, it.Error()
	}
	return values, nil
}

//PrefixCount 前缀数量
func (db *ListHelper) PrefixCount(prefix []byte) (count int64) {
	it := db.db.Iterator(prefix, nil, true)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		if it.Error() != nil {
			listlog.Error("PrefixCount it.Value()", "error", it.Error())
			return 0
		}
		count++
	}
	return count
}

//IteratorCallback 迭代回调，fn 返回 true 时停止
func (db *ListHelper) IteratorCallback(start []byte, end []byte, count int32, direction int32, fn func(key, value []byte) bool) {
	reserve := direction == ListDESC
	it := db.db.Iterator(start, end, reserve)
	defer it.Close()
	var i int32
	for it.Rewind(); it.Valid(); it.Next() {
		if it.Error() != nil {
			listlog.Error("IteratorCallback", "error", it.Error())
			return
		}
		if fn(cloneByte(it.Key()), it.ValueCopy()) {
			break
		}
		//count 到数目了
		i++
		if i == count {
			break
		}
	}
}
