package auth

// NewLocalWith builds a Local provider with replaced lookups
func NewLocalWith(profile string, getenv func(string) string, account func() (string, error)) *Local {
	return &Local{Profile: profile, getenv: getenv, account: account}
}
