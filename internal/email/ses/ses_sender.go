package ses

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"faena/internal/domain"
	"faena/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendImportSummary(ctx context.Context, toEmail string, meta domain.ImportMetadata, errs []string) error {
	subject := fmt.Sprintf("Provider import finished: %d unique records", meta.UniqueRecords)
	textBody := buildSummaryText(meta, errs)
	htmlBody := buildSummaryHTML(meta, errs)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildSummaryText(meta domain.ImportMetadata, errs []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Provider import finished.\n\n")
	fmt.Fprintf(&b, "Sources processed: %d of %d\n", meta.ProcessedSources, meta.TotalSources)
	fmt.Fprintf(&b, "Records before dedup: %d\n", meta.TotalRecordsBeforeDedup)
	fmt.Fprintf(&b, "Unique records: %d\n", meta.UniqueRecords)
	fmt.Fprintf(&b, "Duplicates removed: %d\n", meta.DuplicatesRemoved)
	if len(errs) > 0 {
		fmt.Fprintf(&b, "\nErrors:\n")
		for _, e := range errs {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}
	b.WriteString("\nFAENA Team")
	return b.String()
}

func buildSummaryHTML(meta domain.ImportMetadata, errs []string) string {
	var errItems strings.Builder
	for _, e := range errs {
		fmt.Fprintf(&errItems, "<li>%s</li>", e)
	}
	errBlock := ""
	if len(errs) > 0 {
		errBlock = fmt.Sprintf(`<h3 style="color: #B91C1C;">Errors</h3><ul>%s</ul>`, errItems.String())
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Provider import finished</h2>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 4px 12px 4px 0;">Sources processed</td><td>%d of %d</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;">Records before dedup</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;">Unique records</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;">Duplicates removed</td><td>%d</td></tr>
  </table>
  %s
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">FAENA - Gestión de Proyectos de Construcción</p>
</body>
</html>`, meta.ProcessedSources, meta.TotalSources, meta.TotalRecordsBeforeDedup,
		meta.UniqueRecords, meta.DuplicatesRemoved, errBlock)
}
