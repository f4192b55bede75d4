package announcer

// Log messages
const (
	LogMsgAnnouncementSent    = "Round announcement sent"
	LogMsgAnnouncementFailed  = "Failed to send round announcement"
	LogMsgPayloadDecodeError  = "Failed to decode event payload for announcement"
	LogMsgAnnouncementDropped = "Announcement dropped, queue full"
)

// Embed colors
const (
	ColorRoundCreated   = 0x5865F2 // Discord Blurple
	ColorWinnerSelected = 0xFFD700 // Gold
	ColorRewardClaimed  = 0x57F287 // Green
	ColorFeeSwept       = 0x99AAB5 // Grey
	ColorRoundExpired   = 0xED4245 // Red
)

// FooterText is shown under every announcement
const FooterText = "Jackpot"

// DefaultLocale formats amounts when the configured locale does not parse
const DefaultLocale = "en"

// ErrContextCreateSession is used when the Discord session cannot be built
const ErrContextCreateSession = "error creating Discord session"
