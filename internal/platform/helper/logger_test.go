package helper

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestStyleFormatter_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&StyleFormatter{})

	l.WithFields(logrus.Fields{"op": "Pop", "list": "abc"}).Info("rejected")

	require.Contains(t, buf.String(), "INFO  unknown - rejected list=abc op=Pop\n")
}

func TestSetLevel(t *testing.T) {
	prev := Log.GetLevel()
	defer Log.SetLevel(prev)

	require.NoError(t, SetLevel("debug"))
	require.Equal(t, logrus.DebugLevel, Log.GetLevel())

	require.Error(t, SetLevel("loud"))
	require.Equal(t, logrus.DebugLevel, Log.GetLevel())
}
