package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/planbord/planbord/pkg/mail"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	SendRequestNotice(ctx context.Context, notice RequestNotice) error
	SendCertificateNotice(ctx context.Context, notice CertificateNotice) error
	SendVisitDateChangeNotice(ctx context.Context, notice VisitDateChangeNotice) error
}

type ServiceImpl struct {
	mailer mail.Mailer
}

func NewService(mailer mail.Mailer) *ServiceImpl {
	return &ServiceImpl{mailer: mailer}
}

func (s *ServiceImpl) SendRequestNotice(ctx context.Context, notice RequestNotice) error {
	log.Debugf("Sending request notice to %s", notice.To)

	body, err := render(requestNoticeTmpl, struct {
		Type template.HTML
		Link string
	}{
		// "electrical/gas" reads as "electrical + gas" in the notice.
		Type: joinTypes(strings.Split(notice.Type, "/"), " + "),
		Link: notice.Link,
	})
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, notice.To, notice.Subject, body)
}

func (s *ServiceImpl) SendCertificateNotice(ctx context.Context, notice CertificateNotice) error {
	log.Debugf("Sending certificate notice to %s", notice.To)

	body, err := render(certificateNoticeTmpl, struct {
		Type       string
		Location   string
		ClientName string
		Link       string
	}{
		Type:       notice.Type,
		Location:   notice.Location,
		ClientName: notice.ClientName,
		Link:       notice.Link,
	})
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, notice.To, notice.Subject, body)
}

func (s *ServiceImpl) SendVisitDateChangeNotice(ctx context.Context, notice VisitDateChangeNotice) error {
	log.Debugf("Sending visit date change notice to %s", notice.To)

	body, err := render(visitDateChangeTmpl, struct {
		Types      template.HTML
		Location   string
		ClientName string
		Date       string
	}{
		Types:      joinTypes(notice.Types, " & "),
		Location:   notice.Location,
		ClientName: notice.ClientName,
		Date:       notice.Date,
	})
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, notice.To, notice.Subject, body)
}

// joinTypes escapes every inspection type and joins them with the literal
// separator, so the body reads "electrical + gas" rather than the
// entity-escaped form the template engine would otherwise emit.
func joinTypes(types []string, sep string) template.HTML {
	escaped := make([]string, len(types))
	for i, t := range types {
		escaped[i] = template.HTMLEscapeString(t)
	}
	return template.HTML(strings.Join(escaped, sep))
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render notice body: %w", err)
	}
	return buf.String(), nil
}
