// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//测试用的 action, 结构与执行器的 action 一致
type DemoAction struct {
	Ty    int32
	Value isDemoActionValue
}

type isDemoActionValue interface {
	isDemoActionValue()
}

type DemoAction_Hello struct {
	Hello *ReqString
}

type DemoAction_Count struct {
	Count *Int64
}

func (*DemoAction_Hello) isDemoActionValue() {}
func (*DemoAction_Count) isDemoActionValue() {}

func (a *DemoAction) GetTy() int32 {
	return a.Ty
}

func (a *DemoAction) GetValue() isDemoActionValue {
	return a.Value
}

func (a *DemoAction) GetHello() *ReqString {
	if x, ok := a.GetValue().(*DemoAction_Hello); ok {
		return x.Hello
	}
	return nil
}

func (a *DemoAction) GetCount() *Int64 {
	if x, ok := a.GetValue().(*DemoAction_Count); ok {
		return x.Count
	}
	return nil
}

func (*DemoAction) OneofWrappers() []interface{} {
	return []interface{}{
		(*DemoAction_Hello)(nil),
		(*DemoAction_Count)(nil),
	}
}

func (a *DemoAction) Marshal() ([]byte, error) {
	e := NewEncoder()
	switch v := a.Value.(type) {
	case *DemoAction_Hello:
		e.Oneof(1, v.Hello)
	case *DemoAction_Count:
		e.Oneof(2, v.Count)
	}
	e.Int32(3, a.Ty)
	return e.Result()
}

func (a *DemoAction) Unmarshal(data []byte) error {
	*a = DemoAction{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			v := &ReqString{}
			if err := f.Message(v); err != nil {
				return err
			}
			a.Value = &DemoAction_Hello{Hello: v}
		case 2:
			v := &Int64{}
			if err := f.Message(v); err != nil {
				return err
			}
			a.Value = &DemoAction_Count{Count: v}
		case 3:
			a.Ty = f.Int32()
		}
		return nil
	})
}

type demoQuery struct {
	a int64
}

func (d *demoQuery) Query_Add(in *Int64) (Message, error) {
	return &Int64{Data: d.a + in.Data}, nil
}

func (d *demoQuery) Query_Fail(in *Int64) (Message, error) {
	return nil, errors.New("fail")
}

func (d *demoQuery) Query_Nothing(in *Int64) (Message, error) {
	return nil, nil
}

func TestListMethod(t *testing.T) {
	methods := ListMethod(&demoQuery{})
	assert.Contains(t, methods, "Query_Add")
	assert.Contains(t, methods, "Query_Fail")
	assert.Len(t, methods, 3)

	actions := ListActionMethod(&DemoAction{}, (&DemoAction{}).OneofWrappers())
	assert.Contains(t, actions, "GetValue")
	assert.Contains(t, actions, "GetHello")
	assert.Contains(t, actions, "GetCount")
	assert.NotContains(t, actions, "GetTy")

	tys := ListType((&DemoAction{}).OneofWrappers())
	assert.Equal(t, reflect.TypeOf(DemoAction_Hello{}), tys["DemoAction_Hello"])
}

func TestGetActionValue(t *testing.T) {
	funclist := ListActionMethod(&DemoAction{}, (&DemoAction{}).OneofWrappers())
	action := &DemoAction{Ty: 2, Value: &DemoAction_Count{Count: &Int64{Data: 7}}}
	name, ty, val := GetActionValue(action, funclist)
	assert.Equal(t, "Count", name)
	assert.Equal(t, int32(2), ty)
	require.False(t, IsNilVal(val))
	assert.Equal(t, int64(7), val.Interface().(*Int64).Data)

	name, _, val = GetActionValue(&DemoAction{}, funclist)
	assert.Equal(t, "", name)
	assert.True(t, IsNilVal(val))

	//oneof 分支存在但内容为空
	_, _, val = GetActionValue(&DemoAction{Value: &DemoAction_Hello{}}, funclist)
	assert.True(t, IsNilVal(val))
}

func TestCallQueryFunc(t *testing.T) {
	q := &demoQuery{a: 10}
	methods := ListMethod(q)
	reply, err := CallQueryFunc(reflect.ValueOf(q), methods["Query_Add"], &Int64{Data: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(30), reply.(*Int64).Data)

	_, err = CallQueryFunc(reflect.ValueOf(q), methods["Query_Fail"], &Int64{})
	assert.EqualError(t, err, "fail")

	_, err = CallQueryFunc(reflect.ValueOf(q), methods["Query_Nothing"], &Int64{})
	assert.Equal(t, ErrActionNotSupport, err)
}

func TestIsOK(t *testing.T) {
	data := make([]reflect.Value, 2)
	var err interface{}
	data[0] = reflect.ValueOf(&ReqNil{})
	data[1] = reflect.ValueOf(err)
	assert.Equal(t, reflect.Invalid, data[1].Kind())
	assert.Equal(t, true, IsNilVal(data[1]))
	assert.Equal(t, true, IsOK(data, 2))
	assert.Equal(t, false, IsOK(data, 1))
	assert.False(t, IsNilVal(reflect.ValueOf(1)))
}
