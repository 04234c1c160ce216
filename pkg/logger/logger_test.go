package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("verbose").GetLevel())
}

func TestWithFields(t *testing.T) {
	entry := WithFields(New("info"), logrus.Fields{"component": "storage"})
	assert.Equal(t, "storage", entry.Data["component"])
}
