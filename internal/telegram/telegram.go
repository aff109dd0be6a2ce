package telegram

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go -package=mocks

// Client delivers reveal notifications through a Telegram bot.
type Client interface {
	// SendToUser sends a MarkdownV2 message to the configured user.
	SendToUser(text string) error
	// SendToChannel sends a MarkdownV2 message to the configured channel.
	SendToChannel(text string) error
}
