package assets

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// readStylesheet reads stylesheet text, decoding it to UTF-8. A forced
// encoding takes precedence; otherwise valid UTF-8 passes through as-is and
// anything else goes through charset detection, which honors BOM and @charset
// markers.
func readStylesheet(path string, force encoding.Encoding, log *zap.Logger) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read stylesheet: %w", err)
	}
	return decodeStylesheet(data, force, log)
}

func decodeStylesheet(data []byte, force encoding.Encoding, log *zap.Logger) (string, error) {
	var text string

	switch {
	case force != nil:
		decoded, err := force.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("unable to decode stylesheet: %w", err)
		}
		text = string(decoded)

	case utf8.Valid(data):
		text = string(data)

	default:
		enc, name, _ := charset.DetermineEncoding(data, "text/css")
		log.Debug("Stylesheet is not valid UTF-8, decoding", zap.String("charset", name))
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("unable to decode stylesheet as %s: %w", name, err)
		}
		text = string(decoded)
	}

	// Decoders surface a leading BOM as U+FEFF
	return strings.TrimPrefix(text, "\ufeff"), nil
}
