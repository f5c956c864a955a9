// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/lottery/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	assert.Equal(t, log15.LvlInfo, getLevel("info"))
	assert.Equal(t, log15.LvlError, getLevel("unknown"))
}

func TestFillDefaultValue(t *testing.T) {
	cfg := &types.Log{}
	fillDefaultValue(cfg)
	assert.Equal(t, "eror", cfg.Loglevel)
	assert.Equal(t, "eror", cfg.LogConsoleLevel)
}

func TestSetFileLog(t *testing.T) {
	defer log15.Root().SetHandler(log15.DiscardHandler())
	file := filepath.Join(t.TempDir(), "lottery.log")
	SetFileLog(&types.Log{
		Loglevel:        "info",
		LogConsoleLevel: "crit",
		LogFile:         file,
		MaxFileSize:     1,
		CallerFile:      true,
	})
	New("module", "test").Info("hello", "key", "value")
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "module=test")
	assert.Contains(t, string(data), "caller=")
}

func TestSetLogLevel(t *testing.T) {
	defer log15.Root().SetHandler(log15.DiscardHandler())
	SetLogLevel("crit")
	SetFileLog(&types.Log{LogConsoleLevel: "crit"})
	New("module", "test").Debug("not printed")
}
