package trial

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers for failure classification. Wrap tags errors with one of
// these so callers can classify with errors.Is without parsing messages.
var (
	ErrEncode        = errors.New("encode failure")
	ErrDecode        = errors.New("decode failure")
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error that carries trial context while tagging it with the
// provided marker, one of the exported sentinels above.
func Wrap(marker error, protocol Protocol, operation string, err error) error {
	detail := buildDetail(protocol, operation)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(protocol Protocol, operation string) string {
	parts := make([]string, 0, 2)
	if p := strings.TrimSpace(string(protocol)); p != "" {
		parts = append(parts, p)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "trial failure"
	}
	return strings.Join(parts, ": ")
}
