package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain/event"
)

type DiscordConfig struct {
	BotKey    string
	ChannelId string
	// SiteURL prefixes collection links in messages, links are omitted when empty
	SiteURL string
}

type sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordImpl struct {
	cfg     DiscordConfig
	discord sender
}

// NewDiscord posts every event as an embed to the configured channel
func NewDiscord(cfg DiscordConfig) (event.Notifier, error) {
	session, err := discordgo.New("Bot " + cfg.BotKey)
	if err != nil {
		return nil, err
	}
	return &discordImpl{cfg: cfg, discord: session}, nil
}

func (im *discordImpl) Notify(c ctx.Ctx, evt *event.Event) error {
	if _, err := im.discord.ChannelMessageSendEmbed(im.cfg.ChannelId, im.embed(evt)); err != nil {
		c.WithField("err", err).WithField("event", evt.Id).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

var titles = map[event.Type]string{
	event.TypeDropCreated:          "New drop!",
	event.TypeTokenMinted:          "Minted",
	event.TypeListed:               "Listed",
	event.TypeListingSold:          "Item sold!",
	event.TypeListingCancelled:     "Listing cancelled",
	event.TypeListingInvalidated:   "Listing invalidated",
	event.TypeBaseURIUpdated:       "Base URI updated",
	event.TypeSupplyMinted:         "New token supply",
	event.TypeOwnershipTransferred: "Ownership transferred",
}

func (im *discordImpl) embed(evt *event.Event) *discordgo.MessageEmbed {
	title, ok := titles[evt.Type]
	if !ok {
		title = string(evt.Type)
	}

	msg := &discordgo.MessageEmbed{
		Title:     title,
		Timestamp: evt.CreatedAt.UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Collection", Value: string(evt.Collection)},
			{Name: "Account", Value: string(evt.Account)},
		},
	}
	if len(im.cfg.SiteURL) > 0 {
		msg.Description = fmt.Sprintf("%s/collections/%s", strings.TrimRight(im.cfg.SiteURL, "/"), evt.Collection)
	}

	if len(evt.Counterparty) > 0 {
		name := "Counterparty"
		switch evt.Type {
		case event.TypeListingSold:
			name = "Seller"
		case event.TypeOwnershipTransferred:
			name = "New owner"
		case event.TypeTokenMinted:
			name = "Paid to"
		}
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: name, Value: string(evt.Counterparty)})
	}
	if evt.DropId > 0 {
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: "Drop", Value: fmt.Sprint(evt.DropId), Inline: true})
	}
	if evt.ListingId != nil {
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: "Listing", Value: fmt.Sprint(*evt.ListingId), Inline: true})
	}
	if len(evt.TokenIds) > 0 {
		ids := make([]string, 0, len(evt.TokenIds))
		for _, id := range evt.TokenIds {
			ids = append(ids, id.String())
		}
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: "Tokens", Value: strings.Join(ids, ", ")})
	}
	if evt.Quantity > 0 {
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: "Quantity", Value: fmt.Sprint(evt.Quantity), Inline: true})
	}
	if len(evt.Price) > 0 {
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: "Price", Value: evt.Price.Ether() + " ETH", Inline: true})
	}
	if len(evt.URI) > 0 {
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: "URI", Value: evt.URI})
	}
	return msg
}
