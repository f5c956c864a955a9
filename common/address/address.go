// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address 地址相关: 执行器地址, 派生记录地址, 地址校验
package address

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"

	"github.com/33cn/lottery/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
)

var addrSeed = []byte("address seed bytes for public key")
var deriveSeed = []byte("address seed bytes for derived record")
var addressCache *lru.Cache
var deriveCache *lru.Cache
var checkAddressCache *lru.Cache

//MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

// ErrEmptyNamespace 派生地址的名字空间不能为空
var ErrEmptyNamespace = errors.New("ErrEmptyNamespace")

func init() {
	addressCache, _ = lru.New(10240)
	deriveCache, _ = lru.New(10240)
	checkAddressCache, _ = lru.New(10240)
}

//ExecPubKey 计算公钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	var bname [200]byte
	buf := append(bname[:0], addrSeed...)
	buf = append(buf, []byte(name)...)
	hash := common.Sha2Sum(buf)
	return hash[:]
}

//ExecAddress 计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	addr := PubKeyToAddress(ExecPubKey(name))
	addrstr := addr.String()
	addressCache.Add(name, addrstr)
	return addrstr
}

// DeriveAddress 根据名字空间和一组key派生出确定的地址, 没有对应的私钥.
// 名字空间和 key 都按长度前缀编码, ("ab","c") 与 ("a","bc") 得到不同的地址.
func DeriveAddress(namespace string, keys ...[]byte) string {
	if namespace == "" {
		panic(ErrEmptyNamespace)
	}
	buf := make([]byte, 0, len(deriveSeed)+len(namespace)+16*(len(keys)+1))
	buf = append(buf, deriveSeed...)
	buf = appendLenPrefix(buf, []byte(namespace))
	for _, key := range keys {
		buf = appendLenPrefix(buf, key)
	}
	cachekey := string(buf)
	if value, ok := deriveCache.Get(cachekey); ok {
		return value.(string)
	}
	hash := common.Sha2Sum(buf)
	addrstr := PubKeyToAddress(hash[:]).String()
	deriveCache.Add(cachekey, addrstr)
	return addrstr
}

func appendLenPrefix(buf, data []byte) []byte {
	var lenbuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenbuf[:], uint64(len(data)))
	buf = append(buf, lenbuf[:n]...)
	return append(buf, data...)
}

//PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Pubkey = make([]byte, len(in))
	copy(a.Pubkey[:], in[:])
	a.Version = 0
	a.Hash160 = common.Rimp160AfterSha256(in)
	return a
}

//CheckAddress 检查地址
func CheckAddress(addr string) (e error) {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	_, e = NewAddrFromString(addr)
	checkAddressCache.Add(addr, e)
	return
}

//NewAddrFromString new 地址
func NewAddrFromString(hs string) (a *Address, e error) {
	dec := base58.Decode(hs)
	if len(dec) == 0 {
		e = errors.New("Cannot decode b58 string '" + hs + "'")
		return
	}
	if len(dec) != 25 {
		e = errors.New("Address length error " + hex.EncodeToString(dec))
		return
	}
	sh := common.Sha2Sum(dec[0:21])
	if !bytes.Equal(sh[:4], dec[21:25]) {
		e = errors.New("Address Checksum error")
		return
	}
	a = new(Address)
	a.Version = dec[0]
	copy(a.Hash160[:], dec[1:21])
	a.Checksum = make([]byte, 4)
	copy(a.Checksum, dec[21:25])
	a.Enc58str = hs
	return
}

//Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte
	Pubkey   []byte
	Enc58str string
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum[:])
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}
