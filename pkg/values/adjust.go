// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	cpuHeadroomMillis = 500
	cpuHeadroomCores  = 0.5

	secondsPerMinute = 60
)

var (
	millicpuRegexp      = regexp.MustCompile(`^([0-9]+)m$`)
	containerNameRegexp = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// AdjustCPURequest reserves half a core below the requested amount:
// "16" becomes "15.5" and "16000m" becomes "15500m".
func AdjustCPURequest(cpu *string) (*string, error) {
	if cpu == nil || len(*cpu) == 0 {
		return cpu, nil
	}

	var result string

	if match := millicpuRegexp.FindStringSubmatch(*cpu); match != nil {
		millis, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("Parsing CPU request '%s': %s", *cpu, err)
		}
		result = fmt.Sprintf("%dm", millis-cpuHeadroomMillis)
	} else {
		cores, err := strconv.ParseFloat(*cpu, 64)
		if err != nil {
			return nil, fmt.Errorf("Parsing CPU request '%s': %s", *cpu, err)
		}
		result = formatDecimal(cores - cpuHeadroomCores)
	}

	return &result, nil
}

// formatDecimal always keeps a fractional part ("3.0", not "3").
func formatDecimal(val float64) string {
	result := strconv.FormatFloat(val, 'f', -1, 64)
	if !strings.Contains(result, ".") {
		result += ".0"
	}
	return result
}

// AdjustTime converts minutes to seconds.
func AdjustTime(minutes *int) *string {
	if minutes == nil {
		return nil
	}
	result := strconv.Itoa(*minutes * secondsPerMinute)
	return &result
}

// ContainerNameFor derives a container name from an image reference:
// the part after the last slash (a trailing slash is ignored) with every
// character outside [A-Za-z0-9] replaced by '-'.
func ContainerNameFor(image string) string {
	if len(image) == 0 {
		return DefaultContainerName
	}

	name := image
	if slashPos := strings.LastIndex(image[:len(image)-1], "/"); slashPos != -1 {
		name = image[slashPos+1:]
	}

	return containerNameRegexp.ReplaceAllString(name, "-")
}

// ScriptCommand wraps script contents into a shell one-liner that
// decodes and runs them.
func ScriptCommand(script []byte) string {
	return fmt.Sprintf("echo %s | base64 --decode | bash", base64.StdEncoding.EncodeToString(script))
}

// CombineScriptAndArgs prepends the script command to args. Without a
// script args are returned as is, so nil and empty lists stay distinguishable.
func CombineScriptAndArgs(script []byte, hasScript bool, args []string) []string {
	if !hasScript {
		return args
	}
	return append([]string{ScriptCommand(script)}, args...)
}
