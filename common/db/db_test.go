// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, backend string) (DB, func()) {
	dir, err := os.MkdirTemp("", "lotterydb")
	require.NoError(t, err)
	db, err := NewDB("test", backend, dir, 16)
	require.NoError(t, err)
	return db, func() {
		db.Close()
		os.RemoveAll(dir)
	}
}

var testBackends = []string{MemDBBackendStr, GoLevelDBBackendStr, GoBadgerDBBackendStr}

func TestNewDBUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "nosuchdb", "", 0)
	assert.Error(t, err)
}

func TestGetSetDelete(t *testing.T) {
	for _, backend := range testBackends {
		t.Run(backend, func(t *testing.T) {
			db, closer := newTestDB(t, backend)
			defer closer()

			_, err := db.Get([]byte("a"))
			assert.Equal(t, ErrNotFoundInDb, err)

			require.NoError(t, db.Set([]byte("a"), []byte("1")))
			v, err := db.Get([]byte("a"))
			require.NoError(t, err)
			assert.Equal(t, []byte("1"), v)

			require.NoError(t, db.Set([]byte("a"), nil))
			_, err = db.Get([]byte("a"))
			assert.Equal(t, ErrNotFoundInDb, err)

			require.NoError(t, db.SetSync([]byte("b"), []byte("2")))
			require.NoError(t, db.DeleteSync([]byte("b")))
			_, err = db.Get([]byte("b"))
			assert.Equal(t, ErrNotFoundInDb, err)
			assert.NotNil(t, db.Stats())
		})
	}
}

func TestBatch(t *testing.T) {
	for _, backend := range testBackends {
		t.Run(backend, func(t *testing.T) {
			db, closer := newTestDB(t, backend)
			defer closer()

			require.NoError(t, db.Set([]byte("gone"), []byte("x")))
			batch := db.NewBatch(true)
			batch.Set([]byte("k1"), []byte("v1"))
			batch.Set([]byte("k2"), []byte("v2"))
			batch.Delete([]byte("gone"))
			assert.Equal(t, 5, batch.ValueSize())
			require.NoError(t, batch.Write())

			v, err := db.Get([]byte("k2"))
			require.NoError(t, err)
			assert.Equal(t, []byte("v2"), v)
			_, err = db.Get([]byte("gone"))
			assert.Equal(t, ErrNotFoundInDb, err)

			batch.Reset()
			assert.Equal(t, 0, batch.ValueSize())
		})
	}
}

func fillList(t *testing.T, db DB) {
	for i := 0; i < 5; i++ {
		key := fmt.Sprintf("list-%02d", i)
		require.NoError(t, db.Set([]byte(key), []byte(key)))
	}
	require.NoError(t, db.Set([]byte("lisu"), []byte("other")))
	require.NoError(t, db.Set([]byte("lisa"), []byte("other")))
}

func toStrings(values [][]byte) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func TestIterator(t *testing.T) {
	for _, backend := range testBackends {
		t.Run(backend, func(t *testing.T) {
			db, closer := newTestDB(t, backend)
			defer closer()
			fillList(t, db)

			it := db.Iterator([]byte("list-"), nil, false)
			var keys []string
			for it.Rewind(); it.Valid(); it.Next() {
				keys = append(keys, string(it.Key()))
			}
			it.Close()
			assert.Equal(t, []string{"list-00", "list-01", "list-02", "list-03", "list-04"}, keys)

			it = db.Iterator([]byte("list-"), nil, true)
			require.True(t, it.Seek([]byte("list-025")))
			assert.Equal(t, "list-02", string(it.Key()))
			require.True(t, it.Seek([]byte("list-03")))
			assert.Equal(t, "list-03", string(it.Key()))
			it.Close()

			it = db.Iterator([]byte("list-"), nil, false)
			require.True(t, it.Seek([]byte("list-025")))
			assert.Equal(t, "list-03", string(it.Key()))
			assert.False(t, it.Seek([]byte("list-05")))
			it.Close()

			it = db.Iterator([]byte("list-01"), []byte("list-03"), false)
			keys = keys[:0]
			for it.Rewind(); it.Valid(); it.Next() {
				keys = append(keys, string(it.Key()))
			}
			it.Close()
			assert.Equal(t, []string{"list-01", "list-02"}, keys)
		})
	}
}

func TestListHelper(t *testing.T) {
	for _, backend := range testBackends {
		t.Run(backend, func(t *testing.T) {
			db, closer := newTestDB(t, backend)
			defer closer()
			fillList(t, db)
			helper := NewListHelper(db)
			prefix := []byte("list-")

			values, err := helper.List(prefix, nil, 2, ListASC)
			require.NoError(t, err)
			assert.Equal(t, []string{"list-00", "list-01"}, toStrings(values))

			values, err = helper.List(prefix, []byte("list-01"), 2, ListASC)
			require.NoError(t, err)
			assert.Equal(t, []string{"list-02", "list-03"}, toStrings(values))

			values, err = helper.List(prefix, nil, 2, ListDESC)
			require.NoError(t, err)
			assert.Equal(t, []string{"list-04", "list-03"}, toStrings(values))

			values, err = helper.List(prefix, []byte("list-03"), 0, ListDESC)
			require.NoError(t, err)
			assert.Equal(t, []string{"list-02", "list-01", "list-00"}, toStrings(values))

			values, err = helper.List(prefix, []byte("list-04"), 10, ListASC)
			require.NoError(t, err)
			assert.Empty(t, values)

			values, err = helper.List(prefix, nil, 0, ListASC)
			require.NoError(t, err)
			assert.Len(t, values, 5)

			assert.Equal(t, int64(5), helper.PrefixCount(prefix))
			assert.Len(t, helper.PrefixScan([]byte("lis")), 7)

			var seen []string
			helper.IteratorCallback(prefix, nil, 0, ListASC, func(key, value []byte) bool {
				seen = append(seen, string(key))
				return len(seen) == 3
			})
			assert.Equal(t, []string{"list-00", "list-01", "list-02"}, seen)
		})
	}
}

func TestMapIteratorDB(t *testing.T) {
	m := MapIteratorDB{
		"p-b": []byte("b"),
		"p-a": []byte("a"),
		"q-c": []byte("c"),
	}
	values, err := NewListHelper(m).List([]byte("p-"), nil, 0, ListASC)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, toStrings(values))
}
