// Package errclass defines stable, machine-readable error classes for
// permaudit.
package errclass

import "fmt"

// AuditError is a stable, machine-readable error class.
type AuditError struct {
	Code    string
	Message string
}

func (e *AuditError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches by code so callers can test with errors.Is against the bare
// class regardless of the attached message.
func (e *AuditError) Is(target error) bool {
	t, ok := target.(*AuditError)
	return ok && e.Code == t.Code
}

// WithMessage returns a new AuditError with the same Code but a specific message.
func (e *AuditError) WithMessage(msg string) *AuditError {
	return &AuditError{Code: e.Code, Message: msg}
}

// WithMessagef returns a new AuditError with a formatted message.
func (e *AuditError) WithMessagef(format string, args ...any) *AuditError {
	return &AuditError{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// All stable error classes.
var (
	ErrTemplateNotFound    = &AuditError{Code: "E_TEMPLATE_NOT_FOUND"}
	ErrTemplateInvalid     = &AuditError{Code: "E_TEMPLATE_INVALID"}
	ErrPathInvalid         = &AuditError{Code: "E_PATH_INVALID"}
	ErrAclUnavailable      = &AuditError{Code: "E_ACL_UNAVAILABLE"}
	ErrProviderUnsupported = &AuditError{Code: "E_PROVIDER_UNSUPPORTED"}
	ErrReportWrite         = &AuditError{Code: "E_REPORT_WRITE"}
	ErrRunLogCorrupt       = &AuditError{Code: "E_RUNLOG_CORRUPT"}
	ErrConfigInvalid       = &AuditError{Code: "E_CONFIG_INVALID"}
)
