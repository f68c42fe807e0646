// MIT License
//
// Copyright (c) 2024-2026 Schemakit Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extractMessage returns the "msg" field of the last JSON log line
func extractMessage(bs []byte) (string, error) {
	lines := bytes.Split(bytes.TrimSpace(bs), []byte("\n"))
	var entry map[string]any
	if err := json.Unmarshal(lines[len(lines)-1], &entry); err != nil {
		return "", err
	}
	msg, _ := entry["msg"].(string)
	return msg, nil
}

// extractLevel returns the "level" field of the last JSON log line
func extractLevel(bs []byte) (string, error) {
	lines := bytes.Split(bytes.TrimSpace(bs), []byte("\n"))
	var entry map[string]any
	if err := json.Unmarshal(lines[len(lines)-1], &entry); err != nil {
		return "", err
	}
	level, _ := entry["level"].(string)
	return level, nil
}

func TestZap(t *testing.T) {
	t.Run("With debug level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(DebugLevel, buffer)
		require.Equal(t, DebugLevel, logger.LogLevel())

		logger.Debug("test debug")
		actual, err := extractMessage(buffer.Bytes())
		require.NoError(t, err)
		assert.Equal(t, "test debug", actual)

		lvl, err := extractLevel(buffer.Bytes())
		require.NoError(t, err)
		assert.Equal(t, DebugLevel.String(), lvl)
	})

	t.Run("With info level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)

		logger.Infof("test %s", "info")
		actual, err := extractMessage(buffer.Bytes())
		require.NoError(t, err)
		assert.Equal(t, "test info", actual)
	})

	t.Run("With warning level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(WarningLevel, buffer)

		logger.Warn("test warning")
		actual, err := extractMessage(buffer.Bytes())
		require.NoError(t, err)
		assert.Equal(t, "test warning", actual)

		lvl, err := extractLevel(buffer.Bytes())
		require.NoError(t, err)
		assert.Equal(t, "WARN", lvl)
	})

	t.Run("With error level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(ErrorLevel, buffer)

		logger.Errorf("test %s", "error")
		actual, err := extractMessage(buffer.Bytes())
		require.NoError(t, err)
		assert.Equal(t, "test error", actual)
	})

	t.Run("With level filtering", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(ErrorLevel, buffer)

		logger.Debug("dropped")
		logger.Info("dropped")
		assert.Zero(t, buffer.Len())
	})

	t.Run("With out-of-range level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(7, buffer)
		assert.Equal(t, DebugLevel, logger.LogLevel())
	})

	t.Run("With panic level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(PanicLevel, buffer)
		assert.Panics(t, func() {
			logger.Panic("boom")
		})
	})

	t.Run("With log output", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		require.Len(t, logger.LogOutput(), 1)
		assert.Equal(t, buffer, logger.LogOutput()[0])
	})
}
