// Package announcer posts round results to a Discord channel.
package announcer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/Jackpot_Go/internal/domain"
	"github.com/osse101/Jackpot_Go/internal/event"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/worker"
)

// Sender is the part of a discordgo session the announcer needs
type Sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer turns jackpot events into channel embeds
type Announcer struct {
	sender    Sender
	channelID string
	tag       language.Tag
	pool      *worker.Pool
	now       func() time.Time
}

// NewSession opens a bot session for the given token
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCreateSession, err)
	}
	return s, nil
}

// New creates an announcer. Sends go through pool when it is non-nil so a
// slow Discord API never blocks the publisher; with a nil pool they are sent
// inline.
func New(sender Sender, channelID, locale string, pool *worker.Pool) *Announcer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Make(DefaultLocale)
	}
	return &Announcer{
		sender:    sender,
		channelID: channelID,
		tag:       tag,
		pool:      pool,
		now:       time.Now,
	}
}

// Register subscribes the announcer to the round lifecycle events
func (a *Announcer) Register(bus event.Bus) {
	bus.Subscribe(event.RoundCreated, a.HandleEvent)
	bus.Subscribe(event.WinnerSelected, a.HandleEvent)
	bus.Subscribe(event.RewardClaimed, a.HandleEvent)
	bus.Subscribe(event.FeeSwept, a.HandleEvent)
	bus.Subscribe(event.RoundExpired, a.HandleEvent)
}

// HandleEvent builds the embed for evt and posts it. Decode failures are
// logged and swallowed; an announcement never fails a round operation.
func (a *Announcer) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	embed, err := a.Embed(evt)
	if err != nil {
		log.Warn(LogMsgPayloadDecodeError, "error", err, "event_type", evt.Type)
		return nil
	}
	if embed == nil {
		return nil
	}

	send := func(context.Context) error { return a.send(evt.Type, embed) }
	if a.pool == nil {
		return send(ctx)
	}
	if !a.pool.Enqueue(worker.JobFunc(send)) {
		log.Warn(LogMsgAnnouncementDropped, "event_type", evt.Type)
	}
	return nil
}

func (a *Announcer) send(t event.Type, embed *discordgo.MessageEmbed) error {
	if _, err := a.sender.ChannelMessageSendEmbed(a.channelID, embed); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgAnnouncementFailed, "error", err, "event_type", t)
		return err
	}
	logger.FromContext(context.Background()).Info(LogMsgAnnouncementSent, "event_type", t)
	return nil
}

// Embed renders evt. It returns nil for event types that are not announced.
func (a *Announcer) Embed(evt event.Event) (*discordgo.MessageEmbed, error) {
	// Printers and casers keep state, build them per call
	pr := message.NewPrinter(a.tag)

	switch evt.Type {
	case event.RoundCreated:
		p, err := event.DecodePayload[domain.RoundCreatedPayload](evt.Payload)
		if err != nil {
			return nil, err
		}
		embed := a.base(evt.Type, ColorRoundCreated, pr.Sprintf("Round %d is open for deposits.", p.RoundIndex))
		if p.EndsAt != nil {
			embed.Fields = append(embed.Fields, field("Closes", p.EndsAt.UTC().Format(time.RFC1123), true))
		}
		return embed, nil

	case event.WinnerSelected:
		p, err := event.DecodePayload[domain.WinnerSelectedPayload](evt.Payload)
		if err != nil {
			return nil, err
		}
		embed := a.base(evt.Type, ColorWinnerSelected,
			pr.Sprintf("**%s** won round %d with a deposit of %d.", p.Winner, p.RoundIndex, p.WinnerDepositAmount))
		embed.Fields = append(embed.Fields,
			field("Pool", pr.Sprintf("%d", p.TotalAmount), true),
			field("Draw", pr.Sprintf("%d (%s)", p.Rand, p.RandSource), true),
		)
		return embed, nil

	case event.RewardClaimed:
		p, err := event.DecodePayload[domain.RewardClaimedPayload](evt.Payload)
		if err != nil {
			return nil, err
		}
		embed := a.base(evt.Type, ColorRewardClaimed,
			pr.Sprintf("**%s** collected %d from round %d.", p.Winner, p.RewardAmount, p.RoundIndex))
		embed.Fields = append(embed.Fields, field("Platform fee", pr.Sprintf("%d", p.FeeAmount), true))
		return embed, nil

	case event.FeeSwept:
		p, err := event.DecodePayload[domain.FeeSweptPayload](evt.Payload)
		if err != nil {
			return nil, err
		}
		return a.base(evt.Type, ColorFeeSwept,
			pr.Sprintf("Round %d is complete. %d went to the treasury.", p.RoundIndex, p.Amount)), nil

	case event.RoundExpired:
		p, err := event.DecodePayload[domain.RoundExpiredPayload](evt.Payload)
		if err != nil {
			return nil, err
		}
		return a.base(evt.Type, ColorRoundExpired,
			pr.Sprintf("Round %d closed with %d deposits totalling %d.", p.RoundIndex, p.DepositCount, p.TotalAmount)), nil
	}
	return nil, nil
}

func (a *Announcer) base(t event.Type, color int, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       a.Title(t),
		Description: description,
		Color:       color,
		Timestamp:   a.now().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterText},
	}
}

// Title turns "round.winner_selected" into "Winner Selected"
func (a *Announcer) Title(t event.Type) string {
	name := string(t)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return cases.Title(a.tag).String(strings.ReplaceAll(name, "_", " "))
}

func field(name, value string, inline bool) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline}
}
