package command

const (
	JSONOutputFlag = "json"
	LogLevelFlag   = "log-level"
	PartyFlag      = "party"
	PrivateFlag    = "private"
)

const (
	DefaultLogLevel = "INFO"
	LoggerName      = "sidhtool"
)
