package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Run("fields reach the output", func(t *testing.T) {
		buf := new(bytes.Buffer)
		l := NewLogger(NewLogrus(buf, logrus.InfoLevel, false))

		l.WithField(PkgKey, "script").WithError(errors.New("boom")).Error("run failed")

		assert.Contains(t, buf.String(), "run failed")
		assert.Contains(t, buf.String(), "script")
		assert.Contains(t, buf.String(), "boom")
	})
	t.Run("level filters", func(t *testing.T) {
		buf := new(bytes.Buffer)
		l := NewLogger(NewLogrus(buf, logrus.InfoLevel, false))

		l.Debug("hidden")
		l.Tracef("hidden %d", 1)

		assert.Empty(t, buf.String())
	})
	t.Run("ecs output is json", func(t *testing.T) {
		buf := new(bytes.Buffer)
		l := NewLogger(NewLogrus(buf, logrus.InfoLevel, true))

		l.Info("hello")

		assert.Contains(t, buf.String(), `"message":"hello"`)
	})
}
