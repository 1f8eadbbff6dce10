package delivery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/annaddsgr/Portfolio/pkg/i18n"
)

const DefaultPhone = "5531992781019"

// SummaryMessage is the prefilled text sent alongside the artifact.
func SummaryMessage(tr i18n.Translator, s Summary) string {
	brand := s.BrandName
	if strings.TrimSpace(brand) == "" {
		brand = tr.T(i18n.DocNotInformed)
	}

	var b strings.Builder
	b.WriteString(tr.T(i18n.ShareHeader))
	b.WriteString("\n\n")
	b.WriteString(tr.T(i18n.ShareGreeting))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, tr.T(i18n.ShareClient)+"\n", s.ClientName)
	fmt.Fprintf(&b, tr.T(i18n.ShareBrand)+"\n", brand)
	fmt.Fprintf(&b, tr.T(i18n.ShareService), s.Service)
	return b.String()
}

// ContactMessage is the prefilled text of the contact section.
func ContactMessage(tr i18n.Translator, name, email, message string) string {
	return tr.T(i18n.ContactGreeting) + "\n\n" +
		fmt.Sprintf(tr.T(i18n.ContactIntro), name) + "\n\n" +
		message + "\n\n" +
		fmt.Sprintf(tr.T(i18n.ContactEmail), email)
}

// WhatsAppLink builds a wa.me deep link with text percent-encoded the way
// browsers encode a URI component (spaces as %20, not +).
func WhatsAppLink(phone, text string) string {
	return "https://wa.me/" + url.PathEscape(phone) + "?text=" + encodeComponent(text)
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
