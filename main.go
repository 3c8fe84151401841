package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/auralisbot/auralis/core/completion"
	"github.com/auralisbot/auralis/core/dispatcher"
	"github.com/auralisbot/auralis/core/intent"
	"github.com/auralisbot/auralis/core/usage"
	"github.com/auralisbot/auralis/pkg/llm"
	"github.com/auralisbot/auralis/services/connectors"
	"github.com/auralisbot/auralis/services/health"
	"github.com/auralisbot/auralis/services/stats"
	"github.com/mudler/xlog"
)

var telegramToken = os.Getenv("AURALIS_TELEGRAM_TOKEN")
var apiKey = os.Getenv("AURALIS_OPENAI_API_KEY")
var apiURL = os.Getenv("AURALIS_LLM_API_URL")
var model = os.Getenv("AURALIS_MODEL")
var timeout = os.Getenv("AURALIS_TIMEOUT")
var maxMessages = os.Getenv("AURALIS_MAX_MESSAGES")
var waitlistURL = os.Getenv("AURALIS_WAITLIST_URL")
var feedbackURL = os.Getenv("AURALIS_FEEDBACK_URL")
var statsSchedule = os.Getenv("AURALIS_STATS_SCHEDULE")
var httpAddr = os.Getenv("AURALIS_HTTP_ADDR")

var quota = dispatcher.DefaultQuota

func init() {
	if telegramToken == "" {
		panic("AURALIS_TELEGRAM_TOKEN not set")
	}
	if apiKey == "" {
		panic("AURALIS_OPENAI_API_KEY not set")
	}
	if apiURL == "" {
		apiURL = llm.DefaultAPIURL
	}
	if model == "" {
		model = completion.DefaultModel
	}
	if timeout == "" {
		timeout = "60s"
	}
	if maxMessages != "" {
		n, err := strconv.Atoi(maxMessages)
		if err != nil {
			panic("AURALIS_MAX_MESSAGES must be an integer: " + err.Error())
		}
		quota = n
	}
}

func main() {
	if err := run(); err != nil {
		xlog.Error("AuraLis stopped", "error", err)
		os.Exit(1)
	}
}

// run returns only after the connector has drained, so the deferred
// shutdowns happen before main decides the exit code.
func run() error {
	// the completion client enforces its own deadline; the transport one is a backstop
	llmClient := llm.NewClient(apiKey, apiURL, "5m")

	completer, err := completion.NewClient(llmClient,
		completion.WithModel(model),
		completion.WithTimeout(timeout),
	)
	if err != nil {
		return err
	}

	ledger := usage.NewLedger[int64]()

	d, err := dispatcher.New(
		dispatcher.WithLedger(ledger),
		dispatcher.WithClassifier(intent.Default()),
		dispatcher.WithCompleter(completer),
		dispatcher.WithQuota(quota),
	)
	if err != nil {
		return err
	}

	reporter, err := stats.NewReporter(ledger, quota, statsSchedule)
	if err != nil {
		return err
	}
	reporter.Start()
	defer reporter.Stop()

	if httpAddr != "" {
		server := health.NewServer(ledger, quota)
		server.ListenInBackground(httpAddr)
		defer server.Shutdown()
	}

	telegram, err := connectors.NewTelegramConnector(map[string]string{
		"token":        telegramToken,
		"waitlist_url": waitlistURL,
		"feedback_url": feedbackURL,
	}, d)
	if err != nil {
		return err
	}

	xlog.Info("Starting AuraLis", "model", model, "quota", quota)
	if err := telegram.Start(context.Background()); err != nil {
		return fmt.Errorf("telegram connector: %w", err)
	}
	return nil
}
