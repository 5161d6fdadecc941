package employee

import (
	"regexp"
	"strconv"
	"strings"
)

var namePattern = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)

// ValidName は名前が英字で始まり、英字と単独の空白 (直後が英字) のみで構成されるかを判定します。
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ParseDecimal は数字と高々一つの小数点からなる正の小数を解析します。
func ParseDecimal(text string) (float64, error) {
	if text == "" {
		return 0, ErrInvalidRate
	}

	dots := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case isDigit(c):
		case c == '.':
			dots++
			if dots > 1 {
				return 0, ErrInvalidRate
			}
		default:
			return 0, ErrInvalidRate
		}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidRate
	}
	return v, nil
}

// ValidDecimal は ParseDecimal が成功するかを返します。
func ValidDecimal(text string) bool {
	_, err := ParseDecimal(text)
	return err == nil
}

// ParsePositiveInteger は数字のみからなる文字列を正の整数として解析します。符号や空白は受け付けません。
func ParsePositiveInteger(text string) (int, error) {
	if text == "" {
		return 0, ErrInvalidCount
	}
	for i := 0; i < len(text); i++ {
		if !isDigit(text[i]) {
			return 0, ErrInvalidCount
		}
	}

	n, err := strconv.Atoi(text)
	if err != nil || n <= 0 {
		return 0, ErrInvalidCount
	}
	return n, nil
}

// ValidPositiveInteger は ParsePositiveInteger が成功するかを返します。
func ValidPositiveInteger(text string) bool {
	_, err := ParsePositiveInteger(text)
	return err == nil
}

func normalizeID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.ContainsAny(trimmed, " \t\r\n\v\f") {
		return "", ErrInvalidID
	}
	return trimmed, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
