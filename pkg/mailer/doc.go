// Package mailer provides a provider-agnostic interface for sending
// transactional email, backed by Postmark in production.
//
// The package is built around the Sender interface so the delivery layer can
// be tested against a mock and the provider swapped without touching
// application code. Parameters are validated before any network call, and
// failures surface as sentinel errors checkable with errors.Is:
//
//	sender, err := mailer.NewPostmarkSender(cfg)
//	if err != nil { ... }
//
//	err = sender.Send(ctx, mailer.SendParams{
//	    To:       "sales@datavruti.com",
//	    ReplyTo:  "jane@example.com",
//	    Subject:  "New Contact Form Submission from Jane Doe",
//	    BodyHTML: html,
//	    Tag:      "contact",
//	})
package mailer
