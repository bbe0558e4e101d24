package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { Init(false, nil) })

	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{"debug disabled", false, false},
		{"debug enabled", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Init(tt.debug, &buf)

			Info("[INFO] hello %s\n", "world")
			Debug("[DEBUG] details\n")

			assert.Contains(t, buf.String(), "[INFO] hello world")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("[DEBUG] details")))
		})
	}
}

func TestLevelsShareWriter(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { Init(false, nil) })

	var buf bytes.Buffer
	Init(false, &buf)

	Warn("[WARN] careful\n")
	Error("[ERROR] broken\n")

	assert.Equal(t, "[WARN] careful\n[ERROR] broken\n", buf.String())
}
