package telegramimpl

import (
	"fmt"

	"github.com/capsy-labs/capsy-companion/internal/telegram"
	"github.com/capsy-labs/capsy-companion/pkg/config"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
	config *config.Config
}

func New(opts Opts) (*TelegramImpl, error) {
	bot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		opts.Logger.Error("Error creating bot", "error", err)
		return nil, err
	}

	return &TelegramImpl{
		bot:    bot,
		logger: opts.Logger.WithComponent("Telegram"),
		config: opts.Config,
	}, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)

func (tg *TelegramImpl) SendToUser(text string) error {
	msg := tgbotapi.NewMessage(tg.config.Telegram.User, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	sent, err := tg.bot.Send(msg)
	if err != nil {
		tg.logger.Error("Error sending message to user",
			"userID", tg.config.Telegram.User,
			"error", err)
		return fmt.Errorf("failed to send message to user: %w", err)
	}

	tg.logger.Info("Message sent to user",
		"userID", tg.config.Telegram.User,
		"messageID", sent.MessageID)
	return nil
}

func (tg *TelegramImpl) SendToChannel(text string) error {
	channelName := "@" + tg.config.Telegram.Channel

	msg := tgbotapi.NewMessageToChannel(channelName, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	if _, err := tg.bot.Send(msg); err != nil {
		tg.logger.Error("Error sending message to channel",
			"channel", channelName,
			"error", err)
		return fmt.Errorf("failed to send message to channel: %w", err)
	}

	tg.logger.Info("Message sent to channel", "channel", channelName)
	return nil
}
