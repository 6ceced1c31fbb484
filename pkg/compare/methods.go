package compare

import (
	"fmt"
)

// Method names for the supported comparison strategies.
const (
	MethodMD5    = "md5"
	MethodSHA256 = "sha256"
	MethodBinary = "binary"
	MethodAuto   = "auto"
)

// Methods returns the supported comparison method names.
func Methods() []string {
	return []string{MethodMD5, MethodSHA256, MethodBinary, MethodAuto}
}

// ValidMethod reports whether the named method is supported.
func ValidMethod(method string) bool {
	switch method {
	case MethodMD5, MethodSHA256, MethodBinary, MethodAuto:
		return true
	}
	return false
}

// New creates a comparator for the named method.
func New(method string, threshold int64, bufferSize int) (Comparator, error) {
	switch method {
	case MethodMD5:
		return NewMD5Comparator(bufferSize), nil
	case MethodSHA256:
		return NewSHA256Comparator(bufferSize), nil
	case MethodBinary:
		return NewBinaryComparator(bufferSize), nil
	case MethodAuto:
		return NewAutoComparator(threshold, bufferSize), nil
	default:
		return nil, fmt.Errorf("unsupported comparison method: %s (use: md5, sha256, binary, auto)", method)
	}
}
