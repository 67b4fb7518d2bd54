// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Message 可以存入状态数据库的记录，使用 protobuf wire 格式编码
type Message interface {
	Marshal() []byte
	Unmarshal(data []byte) error
}

// Encode 编码
func Encode(data Message) []byte {
	return data.Marshal()
}

// Decode 解码
func Decode(data []byte, msg Message) error {
	if err := msg.Unmarshal(data); err != nil {
		return errors.Wrap(ErrDecode, err.Error())
	}
	return nil
}

// Encoder appends protobuf wire fields. Zero values are omitted, as proto3 does.
type Encoder struct {
	buf []byte
}

// NewEncoder new
func NewEncoder() *Encoder {
	return &Encoder{}
}

// String field
func (e *Encoder) String(num protowire.Number, s string) *Encoder {
	if s == "" {
		return e
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, s)
	return e
}

// Bytes field
func (e *Encoder) Bytes(num protowire.Number, b []byte) *Encoder {
	if len(b) == 0 {
		return e
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, b)
	return e
}

// Uint64 field
func (e *Encoder) Uint64(num protowire.Number, v uint64) *Encoder {
	if v == 0 {
		return e
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, v)
	return e
}

// Int64 field
func (e *Encoder) Int64(num protowire.Number, v int64) *Encoder {
	return e.Uint64(num, uint64(v))
}

// Bool field
func (e *Encoder) Bool(num protowire.Number, v bool) *Encoder {
	if !v {
		return e
	}
	return e.Uint64(num, 1)
}

// Amount field, fixed 16 bytes big-endian
func (e *Encoder) Amount(num protowire.Number, a Amount) *Encoder {
	if a.IsZero() {
		return e
	}
	return e.Bytes(num, a.Bytes())
}

// Message embeds a nested record. A nil record is omitted.
func (e *Encoder) Message(num protowire.Number, m Message) *Encoder {
	if m == nil {
		return e
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, m.Marshal())
	return e
}

// Data returns the encoded bytes
func (e *Encoder) Data() []byte {
	return e.buf
}

// Field is one decoded wire field
type Field struct {
	Num    protowire.Number
	Type   protowire.Type
	Varint uint64
	Raw    []byte
}

// String value
func (f Field) String() string {
	return string(f.Raw)
}

// Bytes value, copied out of the input buffer
func (f Field) Bytes() []byte {
	out := make([]byte, len(f.Raw))
	copy(out, f.Raw)
	return out
}

// Int64 value
func (f Field) Int64() int64 {
	return int64(f.Varint)
}

// Uint64 value
func (f Field) Uint64() uint64 {
	return f.Varint
}

// Bool value
func (f Field) Bool() bool {
	return f.Varint != 0
}

// Amount value
func (f Field) Amount() (Amount, error) {
	return AmountFromBytes(f.Raw)
}

// Walk calls fn for every field of data; unknown wire types are skipped
func Walk(data []byte, fn func(f Field) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		f := Field{Num: num, Type: typ}
		switch typ {
		case protowire.VarintType:
			v, m := protowire.ConsumeVarint(data)
			if m < 0 {
				return protowire.ParseError(m)
			}
			f.Varint = v
			n = m
		case protowire.BytesType:
			v, m := protowire.ConsumeBytes(data)
			if m < 0 {
				return protowire.ParseError(m)
			}
			f.Raw = v
			n = m
		default:
			m := protowire.ConsumeFieldValue(num, typ, data)
			if m < 0 {
				return protowire.ParseError(m)
			}
			data = data[m:]
			continue
		}
		data = data[n:]
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}
