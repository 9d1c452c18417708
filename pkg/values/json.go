// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf16"
)

// EncodeJSONArray renders strs on a single line as ["a", "b"]. Non-ASCII
// characters are escaped so the result is safe to embed anywhere in a YAML line.
func EncodeJSONArray(strs []string) (string, error) {
	var result strings.Builder

	result.WriteString("[")

	for i, str := range strs {
		if i > 0 {
			result.WriteString(", ")
		}

		encoded, err := encodeJSONString(str)
		if err != nil {
			return "", err
		}
		result.WriteString(encoded)
	}

	result.WriteString("]")

	return result.String(), nil
}

func encodeJSONString(str string) (string, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(str)
	if err != nil {
		return "", err
	}

	return escapeNonASCII(shortenControlEscapes(strings.TrimSuffix(buf.String(), "\n"))), nil
}

// shortenControlEscapes writes backspace and form feed as \b and \f
// instead of encoding/json's \u0008 and \u000c.
func shortenControlEscapes(str string) string {
	var result strings.Builder

	for i := 0; i < len(str); i++ {
		if str[i] != '\\' || i+1 >= len(str) {
			result.WriteByte(str[i])
			continue
		}

		if str[i+1] == 'u' && i+6 <= len(str) {
			switch str[i+2 : i+6] {
			case "0008":
				result.WriteString(`\b`)
				i += 5
				continue
			case "000c":
				result.WriteString(`\f`)
				i += 5
				continue
			}
		}

		// escape pairs are copied whole
		result.WriteString(str[i : i+2])
		i++
	}

	return result.String()
}

func escapeNonASCII(str string) string {
	var result strings.Builder

	for _, r := range str {
		switch {
		case r < 0x80:
			result.WriteRune(r)
		case r > 0xffff:
			r1, r2 := utf16.EncodeRune(r)
			writeEscapedRune(&result, r1)
			writeEscapedRune(&result, r2)
		default:
			writeEscapedRune(&result, r)
		}
	}

	return result.String()
}

const hexDigits = "0123456789abcdef"

func writeEscapedRune(result *strings.Builder, r rune) {
	result.WriteString(`\u`)
	for shift := 12; shift >= 0; shift -= 4 {
		result.WriteByte(hexDigits[(r>>uint(shift))&0xf])
	}
}
