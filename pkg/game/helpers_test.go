package game

import (
	"bytes"
	"log"
	"os"
	"testing"
)

// captureLog 捕获 fn 执行期间的日志输出
func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	fn()
	return buf.String()
}
