package logging

import (
	"log/slog"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/m-mizutani/masq"
)

const redacted = "[REDACTED]"

// credentialHeaders are masked by HeaderAttrs and, as field names, by the
// handler-level redactor.
var credentialHeaders = []string{"authorization", "cookie", "set-cookie"}

var (
	// "Bearer eyJ..." in free text such as a wrapped error message.
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[\w\-.~+/]+=*`)
	// A bare JWT: three base64url segments of some length.
	jwtValue = regexp.MustCompile(`[\w-]{10,}\.[\w-]{10,}\.[\w-]{10,}`)
)

// redactor masks credential fields by name and token-shaped values
// anywhere in a record.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldName("jwt_secret"),
		masq.WithFieldPrefix("password_"),
		masq.WithRegex(bearerValue),
		masq.WithRegex(jwtValue),
	}
	for _, h := range credentialHeaders {
		opts = append(opts, masq.WithFieldName(h))
	}
	return masq.New(opts...)
}

// HeaderAttrs returns the request headers as one "headers" group with
// credential headers masked. Names are sorted so the output is stable.
func HeaderAttrs(h http.Header) slog.Attr {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]any, 0, len(names))
	for _, name := range names {
		value := strings.Join(h.Values(name), ",")
		if isCredentialHeader(name) {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Group("headers", attrs...)
}

func isCredentialHeader(name string) bool {
	for _, h := range credentialHeaders {
		if strings.EqualFold(name, h) {
			return true
		}
	}
	return false
}
