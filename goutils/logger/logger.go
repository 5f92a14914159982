package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
)

// InitLogger sends warnings and errors to stderr, everything else to stdout.
// The level can be passed as the first argument: ERROR(2), INFO(4), DEBUG(5).
func InitLogger() {
	log.SetOutput(io.Discard)

	log.AddHook(&writer.Hook{
		Writer: os.Stderr,
		LogLevels: []log.Level{
			log.PanicLevel,
			log.FatalLevel,
			log.ErrorLevel,
			log.WarnLevel,
		},
	})
	log.AddHook(&writer.Hook{
		Writer: os.Stdout,
		LogLevels: []log.Level{
			log.TraceLevel,
			log.InfoLevel,
			log.DebugLevel,
		},
	})

	log.SetLevel(parseLevel(os.Args))
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func parseLevel(args []string) log.Level {
	if len(args) < 2 {
		fmt.Println("Pass loglevel as an argument if you don't want default(INFO) to be set.")
		fmt.Println("Values to be passed for logLevel: ERROR(2),INFO(4),DEBUG(5)")

		return log.InfoLevel
	}

	logLevel, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil || logLevel > 6 {
		return log.DebugLevel
	}

	return log.Level(logLevel)
}
