// Package bot is the Telegram conversation surface: it collects a search
// query turn by turn (techs -> location -> minimum experience) and renders
// the matching candidates.
package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Traverser25/GetCoditer/internal/database"
	"github.com/Traverser25/GetCoditer/internal/models"
	"github.com/Traverser25/GetCoditer/internal/query"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	engine   *query.Engine
	store    database.Store
	sessions *sessions
}

func New(token string, engine *query.Engine, store database.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &Bot{
		api:      api,
		engine:   engine,
		store:    store,
		sessions: newSessions(),
	}, nil
}

// Run long-polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.sessions.start(chatID)
			b.send(chatID, "👋 Welcome! Select tech stack by replying with numbers (comma-separated):\n\n"+renderTechMenu())
		case "cancel":
			b.sessions.end(chatID)
			b.send(chatID, "❌ Search cancelled.")
		case "author":
			b.handleAuthorSearch(ctx, chatID, strings.TrimSpace(msg.CommandArguments()))
		default:
			b.send(chatID, "Unknown command. Use /start to search candidates.")
		}
		return
	}

	sess, ok := b.sessions.get(chatID)
	if !ok {
		b.send(chatID, "Use /start to begin a candidate search.")
		return
	}

	switch sess.state {
	case stateTechs:
		b.receiveTechs(chatID, sess, text)
	case stateLocation:
		b.receiveLocation(chatID, sess, text)
	case stateYOE:
		b.receiveYOE(ctx, chatID, sess, text)
	}
}

func (b *Bot) receiveTechs(chatID int64, sess *session, text string) {
	techs, err := parseTechSelection(text)
	if err != nil {
		b.send(chatID, "❌ Invalid input. Please reply like: 1,4,6")
		return
	}
	sess.techs = techs
	sess.state = stateLocation
	b.send(chatID, "📍 Enter preferred location (or type skip):")
}

func (b *Bot) receiveLocation(chatID int64, sess *session, text string) {
	if !strings.EqualFold(text, "skip") {
		sess.location = text
	}
	sess.state = stateYOE
	b.send(chatID, "🧠 Enter minimum years of experience (or type skip):")
}

func (b *Bot) receiveYOE(ctx context.Context, chatID int64, sess *session, text string) {
	var minYOE float64
	if !strings.EqualFold(text, "skip") {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			b.send(chatID, "❌ Invalid number. Please enter a numeric value or type skip.")
			return
		}
		minYOE = v
	}

	q := models.Query{Techs: sess.techs, MinYOE: minYOE}
	if sess.location != "" {
		q.Locations = []string{sess.location}
	}
	b.sessions.end(chatID)

	results, err := b.engine.Answer(ctx, q)
	if err != nil {
		log.Printf("⚠️ Query failed: %v", err)
		b.send(chatID, "⚠️ Something went wrong running your search. Try again later.")
		return
	}
	if len(results) == 0 {
		b.send(chatID, "😞 No matching candidates found.")
		return
	}

	for _, c := range results {
		if err := b.sendCandidate(chatID, c); err != nil {
			log.Printf("⚠️ Failed to send candidate to Telegram: %v", err)
		}
	}
}

func (b *Bot) handleAuthorSearch(ctx context.Context, chatID int64, name string) {
	if name == "" {
		b.send(chatID, "Usage: /author <name>")
		return
	}

	results, err := b.store.SearchByAuthor(ctx, name)
	if err != nil {
		log.Printf("⚠️ Author search failed: %v", err)
		b.send(chatID, "⚠️ Something went wrong running your search. Try again later.")
		return
	}
	if len(results) == 0 {
		b.send(chatID, "😞 No matching candidates found.")
		return
	}
	if len(results) > query.MaxResults {
		results = results[:query.MaxResults]
	}

	for _, c := range results {
		if err := b.sendCandidate(chatID, c); err != nil {
			log.Printf("⚠️ Failed to send candidate to Telegram: %v", err)
		}
	}
}

func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

// sendCandidate renders one candidate card. The blurb is excerpted here,
// at presentation time only.
func (b *Bot) sendCandidate(chatID int64, c models.Candidate) error {
	yrs := strconv.FormatFloat(c.ExperienceYears, 'f', -1, 64)

	msgText := fmt.Sprintf("👤 *%s* \\(%s yrs\\)\n", escapeMarkdown(c.Author), escapeMarkdown(yrs))

	loc := c.Location
	if loc == "" {
		loc = "N/A"
	}
	stack := strings.Join(c.TechStack, ", ")
	if stack == "" {
		stack = "N/A"
	}
	msgText += fmt.Sprintf("📍 %s \\| 🧰 %s\n", escapeMarkdown(loc), escapeMarkdown(stack))

	if c.CVIsLink {
		msgText += fmt.Sprintf("📄 [CV Link](%s)\n", c.CVLink)
	} else if c.CVLink != "" {
		msgText += fmt.Sprintf("📄 %s\n", escapeMarkdown(c.CVLink))
	}

	msgText += fmt.Sprintf("📝 %s\n", escapeMarkdown(excerpt(c.Blurb, 150)))

	msg := tgbotapi.NewMessage(chatID, msgText)
	msg.ParseMode = "MarkdownV2"
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("⚠️ Failed to send message: %v", err)
	}
}
