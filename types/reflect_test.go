// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type reqAdd struct {
	B int64
}

type replyAdd struct {
	Data int64
}

type T struct {
	a int64
}

func (t *T) Query_Add(in *reqAdd) (*replyAdd, error) {
	return &replyAdd{Data: t.a + in.B}, nil
}

func (t *T) Query_Fail(in *reqAdd) (*replyAdd, error) {
	return nil, ErrInvalidParam
}

func (t *T) Query_Nil(in *reqAdd) (*replyAdd, error) {
	return nil, nil
}

func (t *T) hidden() {}

func TestListMethod(t *testing.T) {
	methods := ListMethod(&T{})
	assert.Len(t, methods, 3)
	assert.Contains(t, methods, "Query_Add")
	assert.NotContains(t, methods, "hidden")
}

func TestCallQueryFunc(t *testing.T) {
	data := &T{a: 10}
	methods := ListMethod(data)
	this := reflect.ValueOf(data)

	reply, err := CallQueryFunc(this, methods["Query_Add"], &reqAdd{B: 20})
	assert.Nil(t, err)
	assert.Equal(t, int64(30), reply.(*replyAdd).Data)

	data.a = 30
	reply, err = CallQueryFunc(this, methods["Query_Add"], &reqAdd{B: 20})
	assert.Nil(t, err)
	assert.Equal(t, int64(50), reply.(*replyAdd).Data)

	_, err = CallQueryFunc(this, methods["Query_Fail"], &reqAdd{})
	assert.Equal(t, ErrInvalidParam, err)
	_, err = CallQueryFunc(this, methods["Query_Nil"], &reqAdd{})
	assert.Equal(t, ErrEmpty, err)
}

func BenchmarkCallQueryFunc(b *testing.B) {
	data := &T{a: 10}
	method := ListMethod(data)["Query_Add"]
	this := reflect.ValueOf(data)
	result := int64(0)
	for i := 0; i < b.N; i++ {
		reply, _ := CallQueryFunc(this, method, &reqAdd{B: 20})
		result += reply.(*replyAdd).Data
	}
	assert.Equal(b, int64(b.N*30), result)
}

func TestIsOK(t *testing.T) {
	data := make([]reflect.Value, 2)
	var err interface{}
	data[0] = reflect.ValueOf(&reqAdd{})
	data[1] = reflect.ValueOf(err)
	assert.Equal(t, reflect.Invalid, data[1].Kind())
	assert.Equal(t, true, IsNilVal(data[1]))
	assert.Equal(t, true, IsOK(data, 2))
	assert.Equal(t, false, IsOK(data, 3))
}
