package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// Bot implements Gateway against one Discord guild
type Bot struct {
	session *discordgo.Session
	guildID string
}

// Init connects the process-wide gateway. Only REST calls are used, so the
// websocket gateway connection is never opened.
func Init(token, guildID string) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		panic(err)
	}
	Instance = &Bot{
		session: session,
		guildID: guildID,
	}
}

func (b *Bot) CreateChannel(name, parentID string) (string, error) {
	channel, err := b.session.GuildChannelCreateComplex(b.guildID, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: parentID,
	})
	if err != nil {
		return "", err
	}
	return channel.ID, nil
}

func (b *Bot) SetChannelPermissions(channelID string, overwrites []PermissionOverwrite) error {
	for _, overwrite := range overwrites {
		overwriteType := discordgo.PermissionOverwriteTypeRole
		if overwrite.Type == OverwriteMember {
			overwriteType = discordgo.PermissionOverwriteTypeMember
		}
		var allow, deny int64
		if overwrite.Allow {
			allow = discordgo.PermissionViewChannel
		} else {
			deny = discordgo.PermissionViewChannel
		}
		if err := b.session.ChannelPermissionSet(channelID, overwrite.SubjectID, overwriteType, allow, deny); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) RenameChannel(channelID, name string) error {
	_, err := b.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name})
	return err
}

func (b *Bot) DeleteChannel(channelID string) error {
	_, err := b.session.ChannelDelete(channelID)
	if isDiscordError(err, discordgo.ErrCodeUnknownChannel) {
		return nil
	}
	return err
}

func (b *Bot) LookupMember(userID string) (string, error) {
	if userID == "" {
		return "", nil
	}
	member, err := b.session.GuildMember(b.guildID, userID)
	if isDiscordError(err, discordgo.ErrCodeUnknownMember) || isDiscordError(err, discordgo.ErrCodeUnknownUser) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return member.User.ID, nil
}

func isDiscordError(err error, code int) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code == code
	}
	return false
}
