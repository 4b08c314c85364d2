package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldJobSource is the structured log field key for the job posting source.
	FieldJobSource = "job_source"
	// FieldCVSource is the structured log field key for the CV source.
	FieldCVSource = "cv_source"
	// FieldRemoteAddr is the structured log field key for an HTTP client address.
	FieldRemoteAddr = "remote_addr"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields returns the fields describing which posting and CV are processed.
// Empty values are ignored.
func CommonFields(jobSource, cvSource string) []zap.Field {
	return StringFields(
		StringField{Key: FieldJobSource, Value: jobSource},
		StringField{Key: FieldCVSource, Value: cvSource},
	)
}

// WithCommonFields attaches the posting and CV sources to the provided logger.
func WithCommonFields(logger *zap.Logger, jobSource, cvSource string) *zap.Logger {
	return WithFields(logger, CommonFields(jobSource, cvSource)...)
}
