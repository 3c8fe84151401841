package dispatcher

import (
	"context"
	"fmt"

	"github.com/auralisbot/auralis/core/intent"
	"github.com/auralisbot/auralis/core/usage"
	"github.com/google/uuid"
	"github.com/mudler/xlog"
)

type ReplyKind int

const (
	ReplyCompletion ReplyKind = iota
	ReplyQuotaExceeded
)

func (k ReplyKind) String() string {
	switch k {
	case ReplyCompletion:
		return "completion"
	case ReplyQuotaExceeded:
		return "quota_exceeded"
	}
	return fmt.Sprintf("ReplyKind(%d)", int(k))
}

// Message is an inbound text from a chat user.
type Message struct {
	UserID int64
	Text   string
}

type Reply struct {
	Kind ReplyKind
	Text string
	// Used and Quota are the counts after this message was recorded.
	Used  int
	Quota int
	// Intent is the quick intent that rewrote the prompt, if any.
	Intent string
	// Fallback is set when the completion service did not answer.
	Fallback bool
}

func Footer(used, quota int) string {
	return fmt.Sprintf("\n\n— Beta: messaggi usati %d/%d", used, quota)
}

func QuotaExceededText(quota int) string {
	return fmt.Sprintf("⚠️ Hai raggiunto il limite della beta (%d messaggi). Grazie per aver provato AuraLis!", quota)
}

// Dispatcher turns one inbound message into exactly one reply.
type Dispatcher struct {
	ledger     *usage.Ledger[int64]
	classifier *intent.Classifier
	completer  Completer
	quota      int
}

func New(opts ...Option) (*Dispatcher, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{
		ledger:     options.ledger,
		classifier: options.classifier,
		completer:  options.completer,
		quota:      options.quota,
	}, nil
}

func (d *Dispatcher) Quota() int {
	return d.quota
}

func (d *Dispatcher) Ledger() *usage.Ledger[int64] {
	return d.ledger
}

// Dispatch counts the message before looking at the quota, so messages
// rejected for being over the cap are counted too.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) Reply {
	trace := uuid.NewString()
	used := d.ledger.Increment(msg.UserID)

	if used > d.quota {
		xlog.Info("Quota exceeded", "trace", trace, "user", msg.UserID, "used", used, "quota", d.quota)
		return Reply{
			Kind:  ReplyQuotaExceeded,
			Text:  QuotaExceededText(d.quota),
			Used:  used,
			Quota: d.quota,
		}
	}

	prompt := msg.Text
	rule, quick := d.classifier.Match(msg.Text)
	if quick {
		prompt = rule.Phrase
	}
	xlog.Debug("Dispatching message", "trace", trace, "user", msg.UserID, "used", used, "intent", rule.Name)

	res := d.completer.Complete(ctx, prompt)
	if res.Fallback {
		xlog.Warn("Replying with fallback", "trace", trace, "user", msg.UserID)
	}

	return Reply{
		Kind:     ReplyCompletion,
		Text:     res.Text + Footer(used, d.quota),
		Used:     used,
		Quota:    d.quota,
		Intent:   rule.Name,
		Fallback: res.Fallback,
	}
}
