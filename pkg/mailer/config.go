package mailer

// Config holds transactional email configuration. The Postmark tokens are
// optional so deployments without email credentials can still boot; the
// delivery layer degrades to a skipped-but-acknowledged outcome when no
// sender could be constructed.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"forms@datavruti.com"`
}

// Configured reports whether the config carries enough to build a real
// Postmark sender.
func (c Config) Configured() bool {
	return c.PostmarkServerToken != "" && c.PostmarkAccountToken != ""
}
