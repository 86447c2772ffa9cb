package errx

import "fmt"

// Code identifies a registered error kind within a registry
type Code string

type registration struct {
	errType Type
	status  int
	message string
}

// Registry namespaces error codes for one domain (e.g. "VOICE", "CHART")
type Registry struct {
	prefix string
	codes  map[Code]registration
}

// NewRegistry creates a registry whose codes are prefixed with the domain name
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[Code]registration),
	}
}

// Register declares a code with its type, HTTP status and default message
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	full := Code(fmt.Sprintf("%s_%s", r.prefix, code))
	r.codes[full] = registration{
		errType: t,
		status:  httpStatus,
		message: message,
	}
	return full
}

// New instantiates an error for a previously registered code
func (r *Registry) New(code Code) *Error {
	reg, ok := r.codes[code]
	if !ok {
		return &Error{
			Code:       string(code),
			Type:       TypeInternal,
			Message:    fmt.Sprintf("unregistered error code: %s", code),
			HTTPStatus: 500,
		}
	}
	return &Error{
		Code:       string(code),
		Type:       reg.errType,
		Message:    reg.message,
		HTTPStatus: reg.status,
	}
}
