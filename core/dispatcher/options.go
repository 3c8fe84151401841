package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/auralisbot/auralis/core/completion"
	"github.com/auralisbot/auralis/core/intent"
	"github.com/auralisbot/auralis/core/usage"
)

const DefaultQuota = 15

// Completer is satisfied by *completion.Client. Complete must not fail.
type Completer interface {
	Complete(ctx context.Context, prompt string) completion.Result
}

type Option func(*options) error

type options struct {
	ledger     *usage.Ledger[int64]
	classifier *intent.Classifier
	completer  Completer
	quota      int
}

func defaultOptions() *options {
	return &options{
		quota: DefaultQuota,
	}
}

func newOptions(opts ...Option) (*options, error) {
	options := defaultOptions()
	for _, o := range opts {
		if err := o(options); err != nil {
			return nil, err
		}
	}
	if options.completer == nil {
		return nil, errors.New("a completer is required")
	}
	if options.ledger == nil {
		options.ledger = usage.NewLedger[int64]()
	}
	if options.classifier == nil {
		options.classifier = intent.Default()
	}
	return options, nil
}

func WithLedger(l *usage.Ledger[int64]) Option {
	return func(o *options) error {
		o.ledger = l
		return nil
	}
}

func WithClassifier(c *intent.Classifier) Option {
	return func(o *options) error {
		o.classifier = c
		return nil
	}
}

func WithCompleter(c Completer) Option {
	return func(o *options) error {
		o.completer = c
		return nil
	}
}

// WithQuota sets the lifetime message cap per user.
func WithQuota(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("quota must be positive, got %d", n)
		}
		o.quota = n
		return nil
	}
}
