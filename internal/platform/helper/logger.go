package helper

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogLevelEnv names the environment variable read at start-up for the log level.
const LogLevelEnv = "TLIST_LOG_LEVEL"

var Log = logrus.New()

type StyleFormatter struct{}

func (f *StyleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	level := strings.ToUpper(entry.Level.String())
	function := "unknown"
	if entry.Caller != nil {
		function = entry.Caller.Function
	}
	msg := entry.Message
	var fields strings.Builder
	for _, k := range sortedKeys(entry.Data) {
		fmt.Fprintf(&fields, " %s=%v", k, entry.Data[k])
	}
	return []byte(fmt.Sprintf("%s %-5s %s - %s%s\n", timestamp, level, function, msg, fields.String())), nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SetLevel parses level with logrus.ParseLevel and applies it to Log.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("helper.SetLevel: %w", err)
	}
	Log.SetLevel(lvl)
	return nil
}

func init() {
	Log.SetFormatter(&StyleFormatter{})
	Log.SetOutput(os.Stderr)
	Log.SetReportCaller(true)
	Log.SetLevel(logrus.InfoLevel)
	if lvl, ok := os.LookupEnv(LogLevelEnv); ok {
		if err := SetLevel(lvl); err != nil {
			Log.Warnf("ignoring %s: %s", LogLevelEnv, err.Error())
		}
	}
}
