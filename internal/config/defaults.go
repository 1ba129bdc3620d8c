package config

const (
	defaultConfigPath    = "~/.config/pairup/config.toml"
	defaultStateDir      = "~/.local/share/pairup"
	defaultMaxMembers    = 64
	defaultMaxCandidates = 64
	defaultRepeatPolicy  = "allow"
	defaultHistoryBack   = "json"
	defaultRedisAddr     = "127.0.0.1:6379"
	defaultRedisPrefix   = "pairup:history"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"

	// DefaultGreeting opens the pair list.
	DefaultGreeting = "Enjoy the chat :D"
	// DefaultAlternatives is printed after the list of unmatched members.
	DefaultAlternatives = " \nyou can choose to \n" +
		"1) take a day off (count out) \n" +
		"2) requesting for partners \n" +
		"3) leave a 4-minute up voice message and answer questions \n" +
		"related to weekly topic. ONLY on Monday can talk about \n" +
		"your last weekend or sharing something interesting."
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Sheet: Sheet{
			NameColumn:      0,
			HeaderRows:      1,
			FooterRows:      1,
			FirstSlotColumn: 2,
			LastSlotColumn:  0,
		},
		Matching: Matching{
			MaxMembers:    defaultMaxMembers,
			MaxCandidates: defaultMaxCandidates,
			Shuffle:       true,
			RepeatPolicy:  defaultRepeatPolicy,
		},
		History: History{
			Backend:     defaultHistoryBack,
			RedisAddr:   defaultRedisAddr,
			RedisPrefix: defaultRedisPrefix,
		},
		Message: Message{
			Greeting:     DefaultGreeting,
			Alternatives: DefaultAlternatives,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
