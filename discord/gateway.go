package discord

// channelPrefix must match the channels created by earlier deployments
const channelPrefix = "🌸・"

// ChannelName builds the channel name for an album slug, e.g. "🌸・trip"
func ChannelName(slug string) string {
	return channelPrefix + slug
}

type OverwriteType int

const (
	OverwriteRole OverwriteType = iota
	OverwriteMember
)

// PermissionOverwrite grants or revokes channel visibility for one subject
// (a role like @everyone, or a single member).
type PermissionOverwrite struct {
	SubjectID string
	Type      OverwriteType
	Allow     bool // allow viewing the channel when true, deny when false
}

// Gateway is the contract the album handlers need from the chat platform.
// The production implementation is Bot; tests substitute a fake.
type Gateway interface {
	// CreateChannel creates a text channel under the given parent and
	// returns its id
	CreateChannel(name, parentID string) (string, error)
	SetChannelPermissions(channelID string, overwrites []PermissionOverwrite) error
	RenameChannel(channelID, name string) error
	// DeleteChannel tolerates the channel already being gone
	DeleteChannel(channelID string) error
	// LookupMember resolves a Discord user id to a guild member id,
	// returning "" when the user is not a member
	LookupMember(userID string) (string, error)
}

// Instance is the process-wide gateway, set by Init (or by tests)
var Instance Gateway
