package notifierimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/capsy-labs/capsy-companion/internal/domain"
	"github.com/capsy-labs/capsy-companion/internal/notifier"
	"github.com/capsy-labs/capsy-companion/internal/repositories/capsule"
	"github.com/capsy-labs/capsy-companion/internal/telegram"
	"github.com/capsy-labs/capsy-companion/pkg/config"
	"github.com/capsy-labs/capsy-companion/pkg/formatter"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"github.com/capsy-labs/capsy-companion/pkg/retry"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config      *config.Config
	Logger      logger.Logger
	Telegram    telegram.Client
	CapsuleRepo capsule.Repository
}

type NotifierImpl struct {
	config      *config.Config
	logger      logger.Logger
	telegram    telegram.Client
	capsuleRepo capsule.Repository
	now         func() time.Time
}

func New(opts Opts) *NotifierImpl {
	return &NotifierImpl{
		config:      opts.Config,
		logger:      opts.Logger.WithComponent("Notifier"),
		telegram:    opts.Telegram,
		capsuleRepo: opts.CapsuleRepo,
		now:         time.Now,
	}
}

var _ notifier.Client = (*NotifierImpl)(nil)

func (n *NotifierImpl) Schedule(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	interval := time.Duration(n.config.Notifier.IntervalMinutes) * time.Minute

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				n.logger.Info("Context cancelled, skipping reveal check")
				return
			}
			taskCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			if err := n.CheckDue(taskCtx); err != nil {
				n.logger.Error("Reveal check failed", "error", err)
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule reveal check: %w", err)
	}

	scheduler.Start()
	n.logger.Info("Reveal check scheduled", "interval", interval.String())

	go func() {
		<-ctx.Done()
		n.logger.Info("Stopping reveal check scheduler")
		if err := scheduler.Shutdown(); err != nil {
			n.logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}

func (n *NotifierImpl) CheckDue(ctx context.Context) error {
	due, err := n.capsuleRepo.ListDue(ctx, n.now())
	if err != nil {
		return fmt.Errorf("failed to list due capsules: %w", err)
	}

	if len(due) == 0 {
		n.logger.Debug("No capsules due")
		return nil
	}

	n.logger.Info("Found due capsules", "count", len(due))

	var firstErr error
	for _, c := range due {
		if err := n.announce(ctx, c); err != nil {
			n.logger.Error("Failed to announce capsule",
				"capsuleID", c.ID,
				"postID", c.PostID,
				"error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if err := n.capsuleRepo.MarkNotified(ctx, c.ID); err != nil {
			n.logger.Error("Failed to mark capsule notified",
				"capsuleID", c.ID,
				"error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

func (n *NotifierImpl) announce(ctx context.Context, c *domain.Capsule) error {
	text := revealMessage(c)

	return retry.Do(ctx, n.logger, "telegram.SendToUser", func() error {
		return n.telegram.SendToUser(text)
	}, retry.DefaultConfig())
}

func revealMessage(c *domain.Capsule) string {
	return fmt.Sprintf(
		"🎁 *Time capsule opened\\!*\n\n%s\n\nSealed until %s",
		formatter.EscapeMarkdownV2(c.Title),
		formatter.EscapeMarkdownV2(formatter.FormatRevealTime(c.RevealAt)),
	)
}
