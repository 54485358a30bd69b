package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/event"
)

type fakeSender struct {
	channel string
	embeds  []*discordgo.MessageEmbed
	err     error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.channel = channelID
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{}, nil
}

type discordSuite struct {
	suite.Suite
	sender *fakeSender
	im     *discordImpl
}

func TestDiscordSuite(t *testing.T) {
	suite.Run(t, new(discordSuite))
}

func (s *discordSuite) SetupTest() {
	s.sender = &fakeSender{}
	s.im = &discordImpl{
		cfg:     DiscordConfig{ChannelId: "123", SiteURL: "https://launchpad.example/"},
		discord: s.sender,
	}
}

func (s *discordSuite) field(embed *discordgo.MessageEmbed, name string) string {
	for _, f := range embed.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func (s *discordSuite) TestSold() {
	listingId := int64(3)
	evt := &event.Event{
		Id:           "e1",
		Type:         event.TypeListingSold,
		Collection:   "0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d",
		Account:      "0xce4468e7ce84aceb74363f4ea64e5a038176f369",
		Counterparty: "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad",
		ListingId:    &listingId,
		TokenIds:     []domain.TokenId{7},
		Quantity:     1,
		Price:        "1500000000000000000",
		CreatedAt:    time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.im.Notify(ctx.Background(), evt))
	s.Require().Len(s.sender.embeds, 1)

	embed := s.sender.embeds[0]
	s.Equal("123", s.sender.channel)
	s.Equal("Item sold!", embed.Title)
	s.Equal("https://launchpad.example/collections/0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d", embed.Description)
	s.Equal("2022-06-01T00:00:00Z", embed.Timestamp)
	s.Equal("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad", s.field(embed, "Seller"))
	s.Equal("3", s.field(embed, "Listing"))
	s.Equal("7", s.field(embed, "Tokens"))
	s.Equal("1.5 ETH", s.field(embed, "Price"))
}

func (s *discordSuite) TestMintWithoutOptionalFields() {
	evt := &event.Event{
		Type:       event.TypeTokenMinted,
		Collection: "0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d",
		Account:    "0xce4468e7ce84aceb74363f4ea64e5a038176f369",
		DropId:     1,
		TokenIds:   []domain.TokenId{0, 1, 2},
		Quantity:   3,
	}
	s.Require().NoError(s.im.Notify(ctx.Background(), evt))

	embed := s.sender.embeds[0]
	s.Equal("Minted", embed.Title)
	s.Equal("0, 1, 2", s.field(embed, "Tokens"))
	s.Equal("1", s.field(embed, "Drop"))
	s.Empty(s.field(embed, "Price"))
	s.Empty(s.field(embed, "Paid to"))
}

func (s *discordSuite) TestSendError() {
	s.sender.err = errors.New("rate limited")
	err := s.im.Notify(ctx.Background(), &event.Event{Type: event.TypeListed})
	s.EqualError(err, "rate limited")
}
