// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//KeyValue 状态数据库或者本地数据库的一次写入
type KeyValue struct {
	Key   []byte `json:"key,omitempty"`
	Value []byte `json:"value,omitempty"`
}

//Marshal marshal
func (kv *KeyValue) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Bytes(1, kv.Key)
	e.Bytes(2, kv.Value)
	return e.Result()
}

//Unmarshal unmarshal
func (kv *KeyValue) Unmarshal(data []byte) error {
	*kv = KeyValue{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			kv.Key = f.Bytes()
		case 2:
			kv.Value = f.Bytes()
		}
		return nil
	})
}

//ReceiptLog 执行回执中的一条日志
type ReceiptLog struct {
	Ty  int32  `json:"ty,omitempty"`
	Log []byte `json:"log,omitempty"`
}

//Marshal marshal
func (r *ReceiptLog) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Int32(1, r.Ty)
	e.Bytes(2, r.Log)
	return e.Result()
}

//Unmarshal unmarshal
func (r *ReceiptLog) Unmarshal(data []byte) error {
	*r = ReceiptLog{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			r.Ty = f.Int32()
		case 2:
			r.Log = f.Bytes()
		}
		return nil
	})
}

//Receipt 交易执行的结果: 状态修改和日志
type Receipt struct {
	Ty   int32         `json:"ty,omitempty"`
	KV   []*KeyValue   `json:"KV,omitempty"`
	Logs []*ReceiptLog `json:"logs,omitempty"`
}

//GetTy get ty
func (r *Receipt) GetTy() int32 {
	if r != nil {
		return r.Ty
	}
	return 0
}

//GetKV get kv
func (r *Receipt) GetKV() []*KeyValue {
	if r != nil {
		return r.KV
	}
	return nil
}

//GetLogs get logs
func (r *Receipt) GetLogs() []*ReceiptLog {
	if r != nil {
		return r.Logs
	}
	return nil
}

//Marshal marshal
func (r *Receipt) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Int32(1, r.Ty)
	for _, kv := range r.KV {
		e.Oneof(2, kv)
	}
	for _, l := range r.Logs {
		e.Oneof(3, l)
	}
	return e.Result()
}

//Unmarshal unmarshal
func (r *Receipt) Unmarshal(data []byte) error {
	*r = Receipt{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			r.Ty = f.Int32()
		case 2:
			kv := &KeyValue{}
			if err := f.Message(kv); err != nil {
				return err
			}
			r.KV = append(r.KV, kv)
		case 3:
			l := &ReceiptLog{}
			if err := f.Message(l); err != nil {
				return err
			}
			r.Logs = append(r.Logs, l)
		}
		return nil
	})
}

//ReceiptData 交易执行后保存的回执, 只保留日志
type ReceiptData struct {
	Ty   int32         `json:"ty,omitempty"`
	Logs []*ReceiptLog `json:"logs,omitempty"`
}

//GetTy get ty
func (r *ReceiptData) GetTy() int32 {
	if r != nil {
		return r.Ty
	}
	return 0
}

//GetLogs get logs
func (r *ReceiptData) GetLogs() []*ReceiptLog {
	if r != nil {
		return r.Logs
	}
	return nil
}

//Marshal marshal
func (r *ReceiptData) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Int32(1, r.Ty)
	for _, l := range r.Logs {
		e.Oneof(3, l)
	}
	return e.Result()
}

//Unmarshal unmarshal
func (r *ReceiptData) Unmarshal(data []byte) error {
	*r = ReceiptData{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			r.Ty = f.Int32()
		case 3:
			l := &ReceiptLog{}
			if err := f.Message(l); err != nil {
				return err
			}
			r.Logs = append(r.Logs, l)
		}
		return nil
	})
}

//LocalDBSet 本地数据库的一组修改
type LocalDBSet struct {
	KV []*KeyValue `json:"KV,omitempty"`
}

//Marshal marshal
func (s *LocalDBSet) Marshal() ([]byte, error) {
	e := NewEncoder()
	for _, kv := range s.KV {
		e.Oneof(2, kv)
	}
	return e.Result()
}

//Unmarshal unmarshal
func (s *LocalDBSet) Unmarshal(data []byte) error {
	*s = LocalDBSet{}
	return WalkFields(data, func(f *Field) error {
		if f.Num == 2 {
			kv := &KeyValue{}
			if err := f.Message(kv); err != nil {
				return err
			}
			s.KV = append(s.KV, kv)
		}
		return nil
	})
}

//Int64 int64
type Int64 struct {
	Data int64 `json:"data,omitempty"`
}

//Marshal marshal
func (i *Int64) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Int64(1, i.Data)
	return e.Result()
}

//Unmarshal unmarshal
func (i *Int64) Unmarshal(data []byte) error {
	*i = Int64{}
	return WalkFields(data, func(f *Field) error {
		if f.Num == 1 {
			i.Data = f.Int64()
		}
		return nil
	})
}

//ReqString 字符串请求
type ReqString struct {
	Data string `json:"data,omitempty"`
}

//Marshal marshal
func (r *ReqString) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.String(1, r.Data)
	return e.Result()
}

//Unmarshal unmarshal
func (r *ReqString) Unmarshal(data []byte) error {
	*r = ReqString{}
	return WalkFields(data, func(f *Field) error {
		if f.Num == 1 {
			r.Data = f.String()
		}
		return nil
	})
}

//ReqNil 空请求
type ReqNil struct{}

//Marshal marshal
func (r *ReqNil) Marshal() ([]byte, error) {
	return []byte{}, nil
}

//Unmarshal unmarshal
func (r *ReqNil) Unmarshal(data []byte) error {
	return WalkFields(data, func(f *Field) error { return nil })
}

//ReqKey 按 key 查询
type ReqKey struct {
	Key []byte `json:"key,omitempty"`
}

//Marshal marshal
func (r *ReqKey) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Bytes(1, r.Key)
	return e.Result()
}

//Unmarshal unmarshal
func (r *ReqKey) Unmarshal(data []byte) error {
	*r = ReqKey{}
	return WalkFields(data, func(f *Field) error {
		if f.Num == 1 {
			r.Key = f.Bytes()
		}
		return nil
	})
}
