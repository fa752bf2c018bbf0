package utils

import (
	"github.com/sirupsen/logrus"
)

func PanicOnError(err error) {
	if err != nil {
		panic(err)
	}
}

func LogOnError(err error, msg string, log *logrus.Entry) {
	if err != nil {
		log.WithError(err).Warn(msg)
	}
}
