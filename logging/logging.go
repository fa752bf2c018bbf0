package logging

import (
	"io"
	"os"

	"accumulator-crypto/config"
	"accumulator-crypto/utils"

	"github.com/sirupsen/logrus"
)

var logging *logrus.Logger

func init() {
	Configure(&config.LogConfig{
		Level:  "debug",
		ToFile: false,
	})
}

// Configure rebuilds the package logger from the given config. Call it once
// after loading the process configuration; before that a debug logger
// writing to stdout is in place.
func Configure(cfg *config.LogConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	utils.PanicOnError(err)
	var out io.Writer
	if cfg.ToFile {
		file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		utils.PanicOnError(err)
		out = io.MultiWriter(os.Stdout, file)
	} else {
		out = os.Stdout
	}
	logging = &logrus.Logger{
		Out: out,
		Formatter: &logrus.TextFormatter{
			ForceColors:     true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			FullTimestamp:   true,
		},
		Level: level,
	}
}

// should be called after Configure
func GetLogger() *logrus.Logger {
	return logging
}
