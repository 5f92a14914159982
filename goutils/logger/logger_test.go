package logger

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want log.Level
	}{
		{name: "no argument", args: []string{"staking-sync"}, want: log.InfoLevel},
		{name: "error level", args: []string{"staking-sync", "2"}, want: log.ErrorLevel},
		{name: "debug level", args: []string{"staking-sync", "5"}, want: log.DebugLevel},
		{name: "out of range", args: []string{"staking-sync", "9"}, want: log.DebugLevel},
		{name: "not a number", args: []string{"staking-sync", "verbose"}, want: log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.args))
		})
	}
}
