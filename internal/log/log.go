// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/staranto/hackerlates/internal/config"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// HACKERLATES_LOG env variable, falling back to the "log" config key.
func InitLogger() {
	level := strings.ToUpper(os.Getenv("HACKERLATES_LOG"))
	if level == "" {
		cfgLevel, _ := config.GetString("log", "ERROR")
		level = strings.ToUpper(cfgLevel)
	}
	log.SetHandler(&CustomHandler{})
	log.SetLevelFromString(level)
}

// CustomHandler formats log messages and writes to stderr. Stdout is
// reserved for the rendered dump.
type CustomHandler struct{}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	message := e.Message
	fmt.Fprintf(os.Stderr, "%s %.1s %s\n", timestamp, level, message)
	return nil
}
