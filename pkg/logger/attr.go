package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// ClientIP records the resolved client address under the key "client_ip".
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// ReceiptID records a submission receipt under the key "receipt_id".
func ReceiptID(id string) slog.Attr {
	return slog.String("receipt_id", id)
}

// Kind records a submission kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Field records a form field name under the key "field". Log the key, never
// the value: rejected values may contain hostile content.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}
