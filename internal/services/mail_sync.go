package services

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"net/mail"
	"time"

	"shipdesk-be/config"
	"shipdesk-be/internal/models"
	"shipdesk-be/internal/repository"
	"shipdesk-be/internal/utils"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// storedDateLayout is how synced mail dates are persisted. The list UI
// shows the raw string; the filter engine parses it leniently.
const storedDateLayout = "2006-01-02 15:04"

// MailSyncService pulls recent messages from the configured Gmail
// account into the email collection. Classification is left to the
// upstream tooling; synced mail arrives unclassified.
type MailSyncService struct {
	cfg       *config.Config
	emailRepo *repository.EmailRepository
}

func NewMailSyncService(cfg *config.Config, emailRepo *repository.EmailRepository) *MailSyncService {
	return &MailSyncService{
		cfg:       cfg,
		emailRepo: emailRepo,
	}
}

func (s *MailSyncService) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		Scopes:       []string{gmail.GmailReadonlyScope},
		Endpoint:     google.Endpoint,
	}
}

func (s *MailSyncService) client(ctx context.Context) (*gmail.Service, error) {
	if s.cfg.GoogleRefreshToken == "" {
		return nil, errors.New("no google refresh token configured")
	}

	token := &oauth2.Token{
		RefreshToken: s.cfg.GoogleRefreshToken,
		TokenType:    "Bearer",
	}
	tokenSource := s.oauthConfig().TokenSource(ctx, token)

	return gmail.NewService(ctx, option.WithTokenSource(tokenSource))
}

// Sync fetches the most recent messages matching the configured query
// and upserts them. A message that fails to fetch or store is skipped,
// never aborts the batch.
func (s *MailSyncService) Sync(ctx context.Context) (int, error) {
	srv, err := s.client(ctx)
	if err != nil {
		return 0, err
	}

	resp, err := srv.Users.Messages.List("me").
		Q(s.cfg.SyncQuery).
		MaxResults(s.cfg.SyncMaxResults).
		Do()
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, header := range resp.Messages {
		msg, err := srv.Users.Messages.Get("me", header.Id).Format("full").Do()
		if err != nil {
			log.Println("mail sync: failed to fetch message:", header.Id, err)
			continue
		}

		email := s.mapMessage(msg)
		if err := s.emailRepo.Upsert(ctx, &email); err != nil {
			log.Println("mail sync: failed to store message:", header.Id, err)
			continue
		}
		synced++
	}

	return synced, nil
}

func (s *MailSyncService) mapMessage(msg *gmail.Message) models.Email {
	var subject, from, to string

	// InternalDate (epoch ms) is the fallback when the Date header is
	// missing or malformed.
	var date time.Time
	if msg.InternalDate > 0 {
		date = time.Unix(msg.InternalDate/1000, (msg.InternalDate%1000)*1000000)
	} else {
		date = time.Now()
	}

	for _, header := range msg.Payload.Headers {
		switch header.Name {
		case "Subject":
			subject = header.Value
		case "From":
			from = header.Value
		case "To":
			to = header.Value
		case "Date":
			if d, err := mail.ParseDate(header.Value); err == nil {
				date = d
			}
		}
	}

	body := utils.SanitizeHTML(extractBody(msg.Payload))

	return models.Email{
		ID:             msg.Id,
		Subject:        utils.ToValidUTF8(subject),
		Sender:         utils.ToValidUTF8(from),
		Recipient:      utils.ToValidUTF8(to),
		Date:           date.Format(storedDateLayout),
		Body:           utils.ToValidUTF8(body),
		Classification: models.ClassificationUnclassified,
		Attachments:    extractAttachments(msg.Payload),
	}
}

func extractAttachments(part *gmail.MessagePart) []models.Attachment {
	if part == nil {
		return nil
	}

	var attachments []models.Attachment
	if part.Filename != "" && part.Body != nil && part.Body.AttachmentId != "" {
		attachments = append(attachments, models.Attachment{
			OriginalName: part.Filename,
			RelPath:      "gmail/" + part.Body.AttachmentId,
			Size:         part.Body.Size,
		})
	}
	for _, p := range part.Parts {
		attachments = append(attachments, extractAttachments(p)...)
	}
	return attachments
}

// extractBody prefers the HTML part (it gets sanitized to plain text
// later) and falls back to text/plain.
func extractBody(part *gmail.MessagePart) string {
	if part == nil {
		return ""
	}

	decode := func(data string) string {
		if decoded, err := base64.RawURLEncoding.DecodeString(data); err == nil {
			return string(decoded)
		}
		if decoded, err := base64.URLEncoding.DecodeString(data); err == nil {
			return string(decoded)
		}
		return ""
	}

	if part.Body != nil && part.Body.Data != "" {
		return decode(part.Body.Data)
	}

	var htmlBody, plainBody string
	for _, p := range part.Parts {
		switch p.MimeType {
		case "text/html":
			if p.Body != nil {
				htmlBody = decode(p.Body.Data)
			}
		case "text/plain":
			if p.Body != nil {
				plainBody = decode(p.Body.Data)
			}
		default:
			if len(p.Parts) > 0 && htmlBody == "" {
				htmlBody = extractBody(p)
			}
		}
	}

	if htmlBody != "" {
		return htmlBody
	}
	return plainBody
}
