package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// MalformedIdentifierErr represents an error when a model URN does not match
// the expected "provider/model-name" shape. Always a caller bug, never retried.
type MalformedIdentifierErr struct {
	domainErr
}

// NewMalformedIdentifierErr creates a new MalformedIdentifierErr with the given message.
func NewMalformedIdentifierErr(message string) *MalformedIdentifierErr {
	return &MalformedIdentifierErr{
		domainErr: domainErr{message: message},
	}
}

// UnknownProviderErr represents an error when a URN names a provider with no
// registered adapter.
type UnknownProviderErr struct {
	domainErr
}

// NewUnknownProviderErr creates a new UnknownProviderErr with the given message.
func NewUnknownProviderErr(message string) *UnknownProviderErr {
	return &UnknownProviderErr{
		domainErr: domainErr{message: message},
	}
}

// MissingCredentialErr represents an error when a secret required by the
// selected provider is absent.
type MissingCredentialErr struct {
	domainErr
}

// NewMissingCredentialErr creates a new MissingCredentialErr with the given message.
func NewMissingCredentialErr(message string) *MissingCredentialErr {
	return &MissingCredentialErr{
		domainErr: domainErr{message: message},
	}
}

// InvalidSlotErr represents an error when an LLM slot argument is outside {1,2}.
type InvalidSlotErr struct {
	domainErr
}

// NewInvalidSlotErr creates a new InvalidSlotErr with the given message.
func NewInvalidSlotErr(message string) *InvalidSlotErr {
	return &InvalidSlotErr{
		domainErr: domainErr{message: message},
	}
}

// AnalysisFailureErr represents an error when the chain-of-thought analysis
// stage produced insufficient content to proceed with synthesis.
type AnalysisFailureErr struct {
	domainErr
}

// NewAnalysisFailureErr creates a new AnalysisFailureErr with the given message.
func NewAnalysisFailureErr(message string) *AnalysisFailureErr {
	return &AnalysisFailureErr{
		domainErr: domainErr{message: message},
	}
}

// GenerationErr represents a failed chat or embedding call. It wraps the
// transport or backend-reported cause so the original message is preserved
// for diagnosis.
type GenerationErr struct {
	domainErr
	cause error
}

// NewGenerationErr creates a new GenerationErr wrapping the given cause.
func NewGenerationErr(message string, cause error) *GenerationErr {
	return &GenerationErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Error returns the error message including the wrapped cause.
func (e GenerationErr) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

// Unwrap returns the wrapped cause.
func (e GenerationErr) Unwrap() error {
	return e.cause
}

// TimeoutErr represents a chat or embedding call that exceeded the adapter's
// request deadline. Surfaced distinctly from other transport failures.
type TimeoutErr struct {
	domainErr
	cause error
}

// NewTimeoutErr creates a new TimeoutErr wrapping the given cause.
func NewTimeoutErr(message string, cause error) *TimeoutErr {
	return &TimeoutErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Error returns the error message including the wrapped cause.
func (e TimeoutErr) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

// Unwrap returns the wrapped cause.
func (e TimeoutErr) Unwrap() error {
	return e.cause
}
