package formstate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/formstate/pkg/logger"
)

// Field tracks validation readiness and the last outcome of one named value.
//
// A field only runs its rule once it has been blurred at least once and has
// changed since the last run. Each Field guards its own state, so it may be
// driven from several goroutines.
type Field struct {
	name       string
	validation ValidationFunc

	timeout time.Duration
	log     *slog.Logger

	mu              sync.Mutex
	needsValidation bool
	canValidate     bool
	errorMessages   Messages
}

// NewField creates a field with both flags cleared. A nil validation always succeeds.
func NewField(name string, validation ValidationFunc) *Field {
	return &Field{
		name:       name,
		validation: validation,
		log:        logger.Discard(),
	}
}

func (f *Field) Name() string {
	return f.name
}

// Validation returns the normalised rule the field runs.
func (f *Field) Validation() ValidationFunc {
	return f.validation
}

func (f *Field) NeedsValidation() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.needsValidation
}

func (f *Field) CanValidate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canValidate
}

// ShouldValidate reports whether the next Validate call will run the rule.
func (f *Field) ShouldValidate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.needsValidation && f.canValidate
}

// ErrorMessages returns the last recorded payload, nil when valid.
func (f *Field) ErrorMessages() Messages {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorMessages.Clone()
}

// Error returns the single-entry mapping {name: errorMessages}.
func (f *Field) Error() Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorView()
}

func (f *Field) errorView() Errors {
	return Errors{f.name: f.errorMessages.Clone()}
}

// Blur marks the field as left by the user: it becomes eligible for validation
// and is flagged as pending.
func (f *Field) Blur() {
	f.mu.Lock()
	f.needsValidation = true
	f.canValidate = true
	f.mu.Unlock()
}

// Change flags the field as pending without making it eligible.
func (f *Field) Change() {
	f.mu.Lock()
	f.needsValidation = true
	f.mu.Unlock()
}

// Validate runs the rule when the field should validate and returns the
// resulting {name: errorMessages} mapping. The pending flag is cleared before
// the rule runs, whether or not it runs at all. Validate never fails: rule
// failures, timeouts and panics are recorded as the field's messages.
func (f *Field) Validate(ctx context.Context, value any, values Values) Errors {
	f.mu.Lock()
	should := f.needsValidation && f.canValidate
	f.needsValidation = false
	if !should {
		view := f.errorView()
		f.mu.Unlock()
		f.log.DebugContext(ctx, "validation skipped", logger.Field(f.name))
		return view
	}
	f.mu.Unlock()

	start := time.Now()
	msgs := f.run(ctx, value, values)

	f.log.DebugContext(ctx, "field validated",
		logger.Field(f.name),
		logger.Messages(msgs),
		logger.Duration(time.Since(start)),
	)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorMessages = msgs
	return f.errorView()
}

func (f *Field) run(ctx context.Context, value any, values Values) (msgs Messages) {
	if f.validation == nil {
		return nil
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", ErrValidationPanic, r)
			f.log.WarnContext(ctx, "validation rule panicked", logger.Field(f.name), logger.Error(err))
			msgs = Messages{MessageInvalid}
		}
	}()

	return MessagesOf(f.validation(ctx, value, values))
}
