// Package dhesend provides a Go client SDK for Dhesend, a transactional
// email service.
//
// The client groups the API into four services: Emails, Domains, APIKeys and
// Webhooks. Every operation returns either its data or an error, never both;
// a non-nil error is always a *dhesend.Error whose Payload carries the
// message or field errors reported by the API.
//
// Basic usage:
//
//	client, err := dhesend.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Emails.Send(ctx, &dhesend.SendEmailParams{
//	    From:     "Acme <hello@acme.com>",
//	    To:       []string{"user@example.com"},
//	    Subject:  "Welcome",
//	    TextBody: "Thanks for signing up.",
//	})
//	if err != nil {
//	    var apiErr *dhesend.Error
//	    if errors.As(err, &apiErr) && apiErr.Payload.IsFields() {
//	        for _, f := range apiErr.Payload.Fields {
//	            log.Printf("%s: %s", f.Field, f.Message)
//	        }
//	    }
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Message ID:", resp.MessageID)
//
// Passing an empty API key makes New read DHESEND_API_KEY once.
package dhesend
