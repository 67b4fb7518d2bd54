// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/zemyblue/finschia-lottery/common/db"
	"github.com/zemyblue/finschia-lottery/types"
)

func newMemDB(t *testing.T) dbm.DB {
	db, err := dbm.NewGoMemDB("test", "", 128)
	require.NoError(t, err)
	return db
}

func TestStateDBTx(t *testing.T) {
	backing := newMemDB(t)
	require.NoError(t, backing.Set([]byte("mavl-a"), []byte("1")))
	s := NewStateDB(backing)

	v, err := s.Get([]byte("mavl-a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = s.Get([]byte("mavl-b"))
	assert.Equal(t, types.ErrNotFound, err)

	s.Begin()
	require.NoError(t, s.Set([]byte("mavl-b"), []byte("2")))
	require.NoError(t, s.Set([]byte("mavl-a"), nil))
	assert.Equal(t, []string{"mavl-b", "mavl-a"}, s.GetSetKeys())
	_, err = s.Get([]byte("mavl-a"))
	assert.Equal(t, types.ErrNotFound, err)
	s.Rollback()

	v, err = s.Get([]byte("mavl-a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = s.Get([]byte("mavl-b"))
	assert.Equal(t, types.ErrNotFound, err)

	s.Begin()
	require.NoError(t, s.Set([]byte("mavl-b"), []byte("2")))
	require.NoError(t, s.Set([]byte("mavl-a"), nil))
	assert.Equal(t, types.ErrNotAllow, s.Flush())
	require.NoError(t, s.Commit())
	require.NoError(t, s.Flush(&types.KeyValue{Key: []byte("extra"), Value: []byte("x")}))

	_, err = backing.Get([]byte("mavl-a"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
	v, err = backing.Get([]byte("mavl-b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
	v, err = backing.Get([]byte("extra"))
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), v)
}

func TestStateDBSetCopiesValue(t *testing.T) {
	s := NewStateDB(newMemDB(t))
	value := []byte("abc")
	require.NoError(t, s.Set([]byte("k"), value))
	value[0] = 'x'
	v, err := s.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
}

func TestStateDBList(t *testing.T) {
	backing := newMemDB(t)
	require.NoError(t, backing.Set([]byte("p-1"), []byte("1")))
	require.NoError(t, backing.Set([]byte("p-3"), []byte("3")))
	require.NoError(t, backing.Set([]byte("q-1"), []byte("q")))
	s := NewStateDB(backing)
	require.NoError(t, s.Set([]byte("p-2"), []byte("2")))
	s.Begin()
	require.NoError(t, s.Set([]byte("p-4"), []byte("4")))
	require.NoError(t, s.Set([]byte("p-3"), nil))

	values, err := s.List([]byte("p-"), nil, 0, dbm.ListASC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("1"), []byte("2"), []byte("4")}, values)

	values, err = s.List([]byte("p-"), []byte("p-1"), 1, dbm.ListASC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("2")}, values)

	values, err = s.List([]byte("p-"), nil, 2, dbm.ListDESC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("4"), []byte("2")}, values)
	assert.Equal(t, int64(3), s.PrefixCount([]byte("p-")))

	s.Rollback()
	assert.Equal(t, int64(3), s.PrefixCount([]byte("p-")))
}
