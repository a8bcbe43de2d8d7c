package bench

import (
	"io"

	"github.com/sirupsen/logrus"
)

func discard() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
