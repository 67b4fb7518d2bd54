// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Is this an exported - upper case - name?
func isExported(name string) bool {
	rune, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(rune)
}

//ListMethod 列出 action 上所有导出的方法
func ListMethod(action interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(action)
	return ListMethodByType(typ)
}

//ListMethodByType list method by type
func ListMethodByType(typ reflect.Type) map[string]reflect.Method {
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		mname := method.Name
		// Method must be exported.
		if method.PkgPath != "" || !isExported(mname) {
			continue
		}
		methods[mname] = method
	}
	return methods
}

//IsOK 检查返回值个数，并且每个非 nil 的返回值都可以转为 interface
func IsOK(list []reflect.Value, n int) bool {
	if len(list) != n {
		return false
	}
	for i := 0; i < len(list); i++ {
		if !IsNilVal(list[i]) && !list[i].CanInterface() {
			return false
		}
	}
	return true
}

//IsNilVal 是否为空值
func IsNilVal(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

//CallQueryFunc 调用 Query_ 方法，返回 (reply, error)
func CallQueryFunc(this reflect.Value, f reflect.Method, in interface{}) (reply interface{}, err error) {
	valueret := f.Func.Call([]reflect.Value{this, reflect.ValueOf(in)})
	if len(valueret) != 2 {
		return nil, ErrMethodReturnType
	}
	if !valueret[0].CanInterface() {
		return nil, ErrMethodReturnType
	}
	if !valueret[1].CanInterface() {
		return nil, ErrMethodReturnType
	}
	r1 := valueret[0].Interface()
	r2 := valueret[1].Interface()
	if r2 != nil {
		e, ok := r2.(error)
		if !ok {
			return nil, ErrMethodReturnType
		}
		return nil, e
	}
	if IsNilVal(valueret[0]) {
		return nil, ErrEmpty
	}
	return r1, nil
}
