package telegram

import (
	"context"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lensbot/internal/enrich"
	"lensbot/internal/history"
	"lensbot/internal/llm"
	"lensbot/internal/prompt"
	"lensbot/internal/relevance"
	"lensbot/internal/safety"
	"lensbot/internal/storage"
	"lensbot/internal/triage"
)

// apologyReply is the only thing a user sees on a backend failure.
// Internal error text never reaches the chat.
const apologyReply = "Ошибка при обращении к AI. Попробуй ещё раз."

// messageDeadline caps one inbound message end to end. A generation
// call that outlives it is abandoned, not awaited.
const messageDeadline = 2 * time.Minute

type Bot struct {
	api       *tgbotapi.BotAPI
	s         sender
	llmClient llm.Client
	history   *history.Manager
	refusals  *safety.Responder
	extractor *enrich.EntityExtractor
	fetcher   *enrich.Fetcher
	recorder  storage.Recorder
	handle    string
	selfID    int64
}

func New(botToken string, llmClient llm.Client, fetcher *enrich.Fetcher, rec storage.Recorder, capacity int) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:       api,
		s:         botAPISender{api: api},
		llmClient: llmClient,
		history:   history.NewManager(capacity),
		refusals:  safety.NewResponder(),
		extractor: enrich.NewEntityExtractor(llmClient),
		fetcher:   fetcher,
		recorder:  rec,
		handle:    api.Self.UserName,
		selfID:    api.Self.ID,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	log.Printf("Authorized as @%s", b.handle)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		// One task per message; distinct conversations never block
		// each other.
		go b.handleIncomingMessage(ctx, update.Message)
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, messageDeadline)
	defer cancel()

	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	if msg.Chat.IsGroup() || msg.Chat.IsSuperGroup() {
		b.handleGroupMessage(ctx, msg)
		return
	}
	b.handlePrivateMessage(ctx, msg)
}

// handlePrivateMessage: private messages are always directed at the bot.
func (b *Bot) handlePrivateMessage(ctx context.Context, msg *tgbotapi.Message) {
	log.Printf("Private message from %d (@%s): %q", msg.From.ID, msg.From.UserName, msg.Text)

	key := history.Private(msg.From.ID)

	if intent, flagged := safety.Classify(msg.Text); flagged {
		// Short-circuit: no enrichment, no generation, and the
		// offending exchange never enters history.
		log.Printf("Adversarial input from %d (%s), refusing", msg.From.ID, intent)
		reply := b.refusals.Refusal()
		b.send(msg.Chat.ID, 0, reply)
		b.record(key, msg.Text, reply, storage.OutcomeRefused)
		return
	}

	prior := b.history.Snapshot(key)
	answer, ok := b.generateAnswer(ctx, msg, prior, false)
	if !ok {
		b.send(msg.Chat.ID, 0, apologyReply)
		b.record(key, msg.Text, apologyReply, storage.OutcomeDegraded)
		return
	}

	b.send(msg.Chat.ID, 0, answer)
	b.history.Append(key, history.Turn{Role: history.RoleUser, Text: msg.Text})
	b.history.Append(key, history.Turn{Role: history.RoleAssistant, Text: answer})
	b.record(key, msg.Text, answer, storage.OutcomeReplied)
}

// handleGroupMessage records the raw message as ambient context, then
// routes it: directed messages answer, the rest get a passive fact check.
func (b *Bot) handleGroupMessage(ctx context.Context, msg *tgbotapi.Message) {
	key := history.Group(msg.Chat.ID)

	// Transcript before this message; the message itself goes in as
	// the assembler's final user turn.
	prior := b.history.Snapshot(key)
	b.history.Append(key, history.Turn{Speaker: speakerName(msg.From), Text: msg.Text})

	if !triage.Directed(msg, b.handle, b.selfID) {
		b.handleAmbient(ctx, msg, key)
		return
	}

	log.Printf("Directed group message in %d from @%s: %q", msg.Chat.ID, msg.From.UserName, msg.Text)

	if intent, flagged := safety.Classify(msg.Text); flagged {
		log.Printf("Adversarial input in group %d (%s), refusing", msg.Chat.ID, intent)
		reply := b.refusals.Refusal()
		b.send(msg.Chat.ID, msg.MessageID, reply)
		b.record(key, msg.Text, reply, storage.OutcomeRefused)
		return
	}

	answer, ok := b.generateAnswer(ctx, msg, prior, true)
	if !ok {
		b.send(msg.Chat.ID, msg.MessageID, apologyReply)
		b.record(key, msg.Text, apologyReply, storage.OutcomeDegraded)
		return
	}
	b.send(msg.Chat.ID, msg.MessageID, answer)
	b.record(key, msg.Text, answer, storage.OutcomeReplied)
}

// handleAmbient runs the low-temperature mistake detector. Any failure
// here resolves to silence; a fact check must never surface an error.
func (b *Bot) handleAmbient(ctx context.Context, msg *tgbotapi.Message, key history.Key) {
	msgs := []llm.Message{
		{Role: "system", Content: prompt.FactCheckInstruction},
		{Role: "user", Content: msg.Text},
	}
	resp, err := b.llmClient.Generate(ctx, msgs, llm.Options{Temperature: 0.1, MaxTokens: 200})
	if err != nil {
		log.Printf("fact check failed, staying silent: %v", err)
		return
	}
	verdict := strings.TrimSpace(resp.Content)
	if verdict == "" || strings.EqualFold(strings.Trim(verdict, " ."), prompt.FactCheckOK) {
		return
	}
	log.Printf("Fact check correction in %d: %q", msg.Chat.ID, verdict)
	b.send(msg.Chat.ID, msg.MessageID, verdict)
	b.record(key, msg.Text, verdict, storage.OutcomeCorrected)
}

// generateAnswer runs the directed pipeline after the safety filter:
// relevance gate, optional entity extraction + source fan-out, prompt
// assembly, generation. ok=false degrades to the fixed apology.
func (b *Bot) generateAnswer(ctx context.Context, msg *tgbotapi.Message, prior []history.Turn, group bool) (string, bool) {
	b.sendTyping(msg.Chat.ID)

	var enrichment string
	if b.extractor != nil && b.fetcher != nil && relevance.ShouldEnrich(msg.Text) {
		if entity, ok := b.extractor.Extract(ctx, msg.Text); ok {
			log.Printf("Enriching for entity %q", entity)
			enrichment = b.fetcher.Lookup(ctx, entity)
		}
	}

	v := prompt.Select(enrichment != "")
	msgs := prompt.Assemble(v, prior, enrichment, msg.Text, group)

	resp, err := b.llmClient.Generate(ctx, msgs, llm.Options{Temperature: v.Temperature, MaxTokens: v.MaxTokens})
	if err != nil {
		log.Printf("failed to generate text: %v", err)
		return "", false
	}
	log.Printf("LLM response [model=%s, persona=%s, tokens: prompt=%d, completion=%d, total=%d]",
		resp.Model, v.Name, resp.PromptTokens, resp.CompletionTokens, resp.TotalTokens)

	answer := strings.TrimSpace(resp.Content)
	if answer == "" {
		log.Printf("empty completion, degrading")
		return "", false
	}
	return answer, true
}

func (b *Bot) send(chatID int64, replyTo int, text string) {
	out := tgbotapi.NewMessage(chatID, text)
	if replyTo != 0 {
		out.ReplyToMessageID = replyTo
	}
	if _, err := b.s.Send(out); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

// sendTyping is best-effort; a failed chat action never blocks a reply.
func (b *Bot) sendTyping(chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := b.s.Request(action); err != nil {
		log.Printf("failed to send typing action: %v", err)
	}
}

func (b *Bot) record(key history.Key, userMsg, botMsg, outcome string) {
	if b.recorder == nil {
		return
	}
	_ = b.recorder.AppendInteraction(storage.Event{
		Timestamp:    time.Now().UTC(),
		Conversation: key.String(),
		UserMessage:  userMsg,
		BotResponse:  botMsg,
		Outcome:      outcome,
	})
}

func speakerName(u *tgbotapi.User) string {
	if u == nil {
		return "?"
	}
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name != "" {
		return name
	}
	if u.UserName != "" {
		return "@" + u.UserName
	}
	return "?"
}
