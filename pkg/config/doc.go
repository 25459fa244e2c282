// Package config loads service configuration from environment variables.
//
// It layers `github.com/joho/godotenv` under `github.com/caarlos0/env/v11`:
// a .env file, when present, seeds the process environment once, then any
// struct annotated with env tags can be populated from it.
//
//	type MailerConfig struct {
//	    Token  string `env:"POSTMARK_SERVER_TOKEN"`
//	    Sender string `env:"SENDER_EMAIL" envDefault:"forms@datavruti.com"`
//	}
//
//	var cfg MailerConfig
//	if err := config.Load(&cfg); err != nil { ... }
//
// Load parses fresh on every call; configuration structs are cheap and the
// service reads them once at startup.
package config
