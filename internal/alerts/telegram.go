package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTelegramAPIURL = "https://api.telegram.org"

// TelegramAlerter posts the report to a chat through the Bot API.
type TelegramAlerter struct {
	APIURL    string
	BotToken  string
	ChannelID string

	httpClient *http.Client
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

func NewTelegramAlerter(botToken, channelID string) *TelegramAlerter {
	return &TelegramAlerter{
		APIURL:     defaultTelegramAPIURL,
		BotToken:   botToken,
		ChannelID:  channelID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// CodeBlock wraps text in a fixed-width Markdown block.
func CodeBlock(text string) string {
	return "```\n" + text + "\n```"
}

func (t *TelegramAlerter) SendAlert(ctx context.Context, alert Alert) error {
	msg := telegramMessage{
		ChatID:    t.ChannelID,
		Text:      CodeBlock(alert.Message),
		ParseMode: "Markdown",
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal telegram message: %v", ErrDispatch, err)
	}

	endpoint := strings.TrimRight(t.APIURL, "/") + "/bot" + t.BotToken + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to build request: %v", ErrDispatch, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		// 错误信息里的 URL 含有 bot token，不能原样输出
		return fmt.Errorf("%w: failed to send telegram message: %s", ErrDispatch, redact(err.Error(), t.BotToken))
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var result telegramResponse
	if err := json.Unmarshal(body, &result); err != nil || resp.StatusCode != http.StatusOK || !result.OK {
		return fmt.Errorf("%w: telegram API returned error status: %d, body: %s", ErrDispatch, resp.StatusCode, string(body))
	}
	return nil
}

func redact(s, secret string) string {
	if secret == "" {
		return s
	}
	return strings.ReplaceAll(s, secret, "<redacted>")
}
