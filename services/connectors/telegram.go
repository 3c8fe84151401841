package connectors

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/auralisbot/auralis/core/dispatcher"
	"github.com/auralisbot/auralis/pkg/xstrings"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/mudler/xlog"
)

const (
	telegramMaxMessageLength = 3000

	DefaultWaitlistURL = "https://auralisbot.carrd.co"
	DefaultFeedbackURL = "https://forms.gle/"
)

// Sender is the outbound half of the bot API. *bot.Bot implements it.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, msg dispatcher.Message) dispatcher.Reply
}

type Telegram struct {
	Token string

	bot        *bot.Bot
	sender     Sender
	dispatcher Dispatcher
	inflight   sync.WaitGroup

	waitlistURL string
	feedbackURL string
}

func NewTelegramConnector(config map[string]string, d Dispatcher) (*Telegram, error) {
	token, ok := config["token"]
	if !ok || token == "" {
		return nil, errors.New("token is required")
	}
	if d == nil {
		return nil, errors.New("dispatcher is required")
	}

	waitlist := config["waitlist_url"]
	if waitlist == "" {
		waitlist = DefaultWaitlistURL
	}
	feedback := config["feedback_url"]
	if feedback == "" {
		feedback = DefaultFeedbackURL
	}

	return &Telegram{
		Token:       token,
		dispatcher:  d,
		waitlistURL: waitlist,
		feedbackURL: feedback,
	}, nil
}

// SetSender replaces the outbound API, mostly for tests.
func (t *Telegram) SetSender(s Sender) {
	t.sender = s
}

// Start long-polls Telegram until ctx is cancelled or the process is
// interrupted, then waits for updates already being handled.
func (t *Telegram) Start(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := []bot.Option{
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			t.HandleUpdate(ctx, update)
		}),
	}

	b, err := bot.New(t.Token, opts...)
	if err != nil {
		return fmt.Errorf("creating telegram bot: %w", err)
	}

	t.bot = b
	if t.sender == nil {
		t.sender = b
	}

	if _, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: []models.BotCommand{
			{Command: "start", Description: "Inizia con AuraLis"},
			{Command: "menu", Description: "Prove rapide"},
			{Command: "info", Description: "Cos'è AuraLis"},
			{Command: "feedback", Description: "Lascia un feedback"},
		},
	}); err != nil {
		xlog.Warn("Could not register bot commands", "error", err)
	}

	xlog.Info("AuraLis beta started, waiting for messages")
	b.Start(ctx)

	xlog.Info("Stopping, waiting for in-flight messages")
	t.inflight.Wait()
	return nil
}

// HandleUpdate answers a single update. Each plain text message gets exactly
// one reply; unknown bot commands and non-text updates are ignored. A reply
// already started is finished even if ctx is cancelled by shutdown.
func (t *Telegram) HandleUpdate(ctx context.Context, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil {
		return
	}
	msg := update.Message
	if msg.Text == "" {
		return
	}

	t.inflight.Add(1)
	defer t.inflight.Done()
	ctx = context.WithoutCancel(ctx)

	if cmd, ok := botCommand(msg); ok {
		t.handleCommand(ctx, msg, cmd)
		return
	}

	xlog.Info("New message", "user", msg.From.ID, "username", msg.From.Username)
	reply := t.dispatcher.Dispatch(ctx, dispatcher.Message{
		UserID: msg.From.ID,
		Text:   msg.Text,
	})

	var markup models.ReplyMarkup
	if reply.Kind == dispatcher.ReplyQuotaExceeded {
		markup = t.ctaKeyboard()
	}
	t.send(ctx, msg.Chat.ID, reply.Text, "", markup)
}

// botCommand returns the command name when Telegram marked the start of the
// message as a bot command. Text that merely begins with "/" is not one.
func botCommand(msg *models.Message) (string, bool) {
	for _, e := range msg.Entities {
		if e.Type != models.MessageEntityTypeBotCommand || e.Offset != 0 {
			continue
		}
		// commands are ASCII, so UTF-16 length equals byte length here
		if e.Length <= 1 || e.Length > len(msg.Text) {
			return "", false
		}
		name := strings.TrimPrefix(msg.Text[:e.Length], "/")
		// group chats address commands as /start@BotName
		name, _, _ = strings.Cut(name, "@")
		return strings.ToLower(name), true
	}
	return "", false
}

func (t *Telegram) handleCommand(ctx context.Context, msg *models.Message, cmd string) {
	chatID := msg.Chat.ID
	switch cmd {
	case "start":
		t.send(ctx, chatID, welcomeText, models.ParseModeHTML, quickKeyboard())
	case "menu":
		t.send(ctx, chatID, menuText, "", quickKeyboard())
	case "info":
		t.send(ctx, chatID, infoText(t.waitlistURL, t.feedbackURL), models.ParseModeHTML, t.ctaKeyboard())
	case "feedback":
		t.send(ctx, chatID, feedbackText, "", t.ctaKeyboard())
	default:
		xlog.Debug("Ignoring unknown command", "command", cmd, "user", msg.From.ID)
	}
}

// send splits text under the Telegram limit; markup goes on the last part.
func (t *Telegram) send(ctx context.Context, chatID int64, text string, mode models.ParseMode, markup models.ReplyMarkup) {
	if t.sender == nil {
		xlog.Error("Telegram connector has no sender, dropping reply", "chat", chatID)
		return
	}

	parts := xstrings.SplitParagraph(text, telegramMaxMessageLength)
	for i, part := range parts {
		params := &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      part,
			ParseMode: mode,
		}
		if i == len(parts)-1 && markup != nil {
			params.ReplyMarkup = markup
		}
		if _, err := t.sender.SendMessage(ctx, params); err != nil {
			xlog.Error("Error sending message", "chat", chatID, "part", i+1, "error", err)
			return
		}
	}
}
