package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"notification-admin/pkg/discord"

	"github.com/gin-gonic/gin"
)

// reportInternalError sends an internal server error report to Discord without
// blocking the response.
func reportInternalError(c *gin.Context, d discord.IDiscord, err error) {
	report := buildErrorReport(c, err.Error(), captureStackTrace())
	go func() {
		for _, msg := range splitForDiscord(report) {
			// Best effort: the report channel must never fail the request.
			_ = d.ReportBug(context.Background(), msg)
		}
	}()
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}

	var stackTrace []string
	for _, pc := range pcs[:n] {
		f := runtime.FuncForPC(pc)
		if f != nil {
			file, line := f.FileLine(pc)
			stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", file, line, f.Name()))
		}
	}
	return stackTrace
}

func buildErrorReport(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("================ NOTIFICATION ADMIN ERROR ================\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.String()))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))

	if params := c.Request.URL.Query().Encode(); params != "" {
		sb.WriteString(fmt.Sprintf("Params  : %s\n", params))
	}

	if bodyBytes, err := io.ReadAll(c.Request.Body); err == nil && len(bodyBytes) > 0 {
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		sb.WriteString("Body    :\n")
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, bodyBytes, "    ", "  "); err == nil {
			sb.WriteString(pretty.String() + "\n")
		} else {
			sb.WriteString("    " + string(bodyBytes) + "\n")
		}
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}
	sb.WriteString("==========================================================\n")
	return sb.String()
}

func splitForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}
