// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

//Message 可以按 protobuf wire 格式编解码的消息
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
}

//Encode  编码
func Encode(data Message) []byte {
	b, err := data.Marshal()
	if err != nil {
		panic(err)
	}
	return b
}

//Decode  解码
func Decode(data []byte, msg Message) error {
	return msg.Unmarshal(data)
}

//Size 消息编码后的长度
func Size(data Message) int {
	return len(Encode(data))
}

//Encoder protobuf wire 编码器, 零值字段不写入
type Encoder struct {
	buf []byte
	err error
}

//NewEncoder new
func NewEncoder() *Encoder {
	return &Encoder{}
}

//Uint64 varint
func (e *Encoder) Uint64(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, v)
}

//Int64 int64 按 varint 编码(负数占 10 字节, 与 protobuf int64 一致)
func (e *Encoder) Int64(num protowire.Number, v int64) {
	e.Uint64(num, uint64(v))
}

//Int32 int32
func (e *Encoder) Int32(num protowire.Number, v int32) {
	e.Uint64(num, uint64(int64(v)))
}

//Uint32 uint32
func (e *Encoder) Uint32(num protowire.Number, v uint32) {
	e.Uint64(num, uint64(v))
}

//Bool bool
func (e *Encoder) Bool(num protowire.Number, v bool) {
	if v {
		e.Uint64(num, 1)
	}
}

//Bytes bytes
func (e *Encoder) Bytes(num protowire.Number, v []byte) {
	if len(v) == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, v)
}

//String string
func (e *Encoder) String(num protowire.Number, v string) {
	if len(v) == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, v)
}

//Strings repeated string, 空字符串也写入
func (e *Encoder) Strings(num protowire.Number, list []string) {
	for _, v := range list {
		e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
		e.buf = protowire.AppendString(e.buf, v)
	}
}

//Int32s repeated int32, packed 编码
func (e *Encoder) Int32s(num protowire.Number, list []int32) {
	if len(list) == 0 {
		return
	}
	var packed []byte
	for _, v := range list {
		packed = protowire.AppendVarint(packed, uint64(int64(v)))
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, packed)
}

//Message 嵌套消息, nil 不写入
func (e *Encoder) Message(num protowire.Number, m Message) {
	if isNilMessage(m) {
		return
	}
	e.writeMessage(num, m)
}

//Oneof oneof 字段, 即使内部消息为 nil 也写入一个空消息, 保留选择的分支
func (e *Encoder) Oneof(num protowire.Number, m Message) {
	if isNilMessage(m) {
		e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
		e.buf = protowire.AppendBytes(e.buf, nil)
		return
	}
	e.writeMessage(num, m)
}

func (e *Encoder) writeMessage(num protowire.Number, m Message) {
	data, err := m.Marshal()
	if err != nil {
		if e.err == nil {
			e.err = err
		}
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, data)
}

//Result 返回编码结果
func (e *Encoder) Result() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.buf == nil {
		return []byte{}, nil
	}
	return e.buf, nil
}

func isNilMessage(m Message) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

//Field 解码时的一个字段
type Field struct {
	Num    protowire.Number
	Type   protowire.Type
	varint uint64
	bytes  []byte
}

//Uint64 varint 值
func (f *Field) Uint64() uint64 {
	return f.varint
}

//Int64 int64
func (f *Field) Int64() int64 {
	return int64(f.varint)
}

//Int32 int32
func (f *Field) Int32() int32 {
	return int32(f.varint)
}

//Uint32 uint32
func (f *Field) Uint32() uint32 {
	return uint32(f.varint)
}

//Bool bool
func (f *Field) Bool() bool {
	return f.varint != 0
}

//Bytes 返回一份拷贝
func (f *Field) Bytes() []byte {
	if f.bytes == nil {
		return nil
	}
	b := make([]byte, len(f.bytes))
	copy(b, f.bytes)
	return b
}

//String string
func (f *Field) String() string {
	return string(f.bytes)
}

//Int32s repeated int32, packed 和非 packed 编码都可以解析
func (f *Field) Int32s(list []int32) ([]int32, error) {
	if f.Type == protowire.VarintType {
		return append(list, f.Int32()), nil
	}
	data := f.bytes
	for len(data) > 0 {
		v, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return nil, errors.Wrap(ErrDecode, protowire.ParseError(n).Error())
		}
		list = append(list, int32(v))
		data = data[n:]
	}
	return list, nil
}

//Message 解码嵌套消息
func (f *Field) Message(m Message) error {
	if f.Type != protowire.BytesType {
		return errors.Wrapf(ErrDecode, "field %d: wire type %d is not bytes", f.Num, f.Type)
	}
	return m.Unmarshal(f.bytes)
}

//WalkFields 依次解析 data 中的字段, 未知的字段跳过
func WalkFields(data []byte, fn func(f *Field) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return errors.Wrap(ErrDecode, protowire.ParseError(n).Error())
		}
		data = data[n:]
		f := Field{Num: num, Type: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(data)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(data)
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
		}
		if n < 0 {
			return errors.Wrap(ErrDecode, protowire.ParseError(n).Error())
		}
		data = data[n:]
		if typ != protowire.VarintType && typ != protowire.BytesType {
			continue
		}
		if err := fn(&f); err != nil {
			return err
		}
	}
	return nil
}
