// Package sanitize reduces raw contact form input to a safe, normalized
// canonical form before validation or storage. Every function is total: bad
// input yields an empty string, never a panic or an error.
package sanitize

import (
	"html"
	"net/mail"
	"net/netip"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// UserAgentMaxLen caps stored user agent strings.
const UserAgentMaxLen = 500

var (
	strictPolicy = bluemonday.StrictPolicy()

	whitespaceRun = regexp.MustCompile(`\s+`)
	newlineRun    = regexp.MustCompile(`\n{3,}`)
	nonNameChar   = regexp.MustCompile(`[^a-zA-Z\s\-']`)
	nonPhoneChar  = regexp.MustCompile(`[^\d+]`)
)

// Options controls the transformations applied by String. The order of
// application is fixed: trim, strip markup, escape, lowercase, collapse.
type Options struct {
	Trim           bool
	StripMarkup    bool
	EscapeHTML     bool
	Lowercase      bool
	CollapseSpaces bool
}

// DefaultOptions enables trimming, markup stripping and whitespace collapsing.
func DefaultOptions() Options {
	return Options{Trim: true, StripMarkup: true, CollapseSpaces: true}
}

// String applies the configured transformations to input. Markup stripping
// removes every tag and drops script bodies entirely; the remaining text is
// unescaped back to plain characters so repeated passes are stable.
func String(input string, opts Options) string {
	if input == "" {
		return ""
	}

	out := input

	if opts.Trim {
		out = strings.TrimSpace(out)
	}

	if opts.StripMarkup {
		out = html.UnescapeString(strictPolicy.Sanitize(out))
	}

	if opts.EscapeHTML {
		out = html.EscapeString(out)
	}

	if opts.Lowercase {
		out = strings.ToLower(out)
	}

	if opts.CollapseSpaces {
		out = whitespaceRun.ReplaceAllString(out, " ")
	}

	return out
}

// Email trims, lowercases and checks the address shape. Subaddresses and
// local-part dots are preserved for every provider. Returns "" when the
// result is not a parseable address.
func Email(email string) string {
	out := strings.ToLower(strings.TrimSpace(email))
	if out == "" {
		return ""
	}

	addr, err := mail.ParseAddress(out)
	if err != nil || addr.Address != out {
		return ""
	}

	return out
}

// Phone keeps digits and the plus sign. A plus is only meaningful as a
// single leading international prefix marker; anywhere else it is removed.
func Phone(phone string) string {
	out := nonPhoneChar.ReplaceAllString(strings.TrimSpace(phone), "")
	if !strings.HasPrefix(out, "+") {
		out = strings.ReplaceAll(out, "+", "")
	}

	return out
}

// Name strips markup, drops everything outside letters, spaces, hyphens and
// apostrophes, then capitalizes the first letter of each word.
func Name(name string) string {
	out := String(name, DefaultOptions())
	out = nonNameChar.ReplaceAllString(out, "")

	return capitalizeWords(out)
}

// Subject applies the default string pipeline.
func Subject(subject string) string {
	return String(subject, DefaultOptions())
}

// Message strips markup but preserves user line breaks, then squeezes runs
// of three or more newlines down to two.
func Message(message string) string {
	out := String(message, Options{Trim: true, StripMarkup: true})

	return newlineRun.ReplaceAllString(out, "\n\n")
}

// IP takes the first entry of a forwarded chain and returns it only when it
// parses as an IPv4 or IPv6 literal.
func IP(ip string) string {
	first, _, _ := strings.Cut(ip, ",")
	first = strings.TrimSpace(first)
	if _, err := netip.ParseAddr(first); err != nil {
		return ""
	}

	return first
}

// UserAgent strips markup and truncates to UserAgentMaxLen characters.
func UserAgent(userAgent string) string {
	out := String(userAgent, Options{Trim: true, StripMarkup: true})
	if runes := []rune(out); len(runes) > UserAgentMaxLen {
		out = string(runes[:UserAgentMaxLen])
	}

	return out
}

// Form carries one contact submission's fields through sanitization and
// validation. An empty string means the field was absent.
type Form struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Subject   string
	Message   string
	IPAddress string
	UserAgent string
	Status    string
	Priority  string
}

// ContactForm applies the matching sanitizer to every present field. Absent
// fields stay empty. Status and priority are only trimmed and lowercased,
// not pushed through the full string pipeline.
func ContactForm(form Form) Form {
	out := Form{}

	if form.FirstName != "" {
		out.FirstName = Name(form.FirstName)
	}
	if form.LastName != "" {
		out.LastName = Name(form.LastName)
	}
	if form.Email != "" {
		out.Email = Email(form.Email)
	}
	if form.Phone != "" {
		out.Phone = Phone(form.Phone)
	}
	if form.Subject != "" {
		out.Subject = Subject(form.Subject)
	}
	if form.Message != "" {
		out.Message = Message(form.Message)
	}
	if form.IPAddress != "" {
		out.IPAddress = IP(form.IPAddress)
	}
	if form.UserAgent != "" {
		out.UserAgent = UserAgent(form.UserAgent)
	}
	if form.Status != "" {
		out.Status = strings.ToLower(strings.TrimSpace(form.Status))
	}
	if form.Priority != "" {
		out.Priority = strings.ToLower(strings.TrimSpace(form.Priority))
	}

	return out
}

// ForLogging returns a copy with contact details masked. Used only at the
// logging boundary, never for the persisted or validated record.
func ForLogging(form Form) Form {
	out := form

	if out.Email != "" {
		out.Email = maskEmail(out.Email)
	}
	if out.Phone != "" {
		out.Phone = maskPhone(out.Phone)
	}
	if out.IPAddress != "" {
		out.IPAddress = maskIP(out.IPAddress)
	}

	return out
}

func maskEmail(email string) string {
	local, domain, found := strings.Cut(email, "@")
	if !found {
		return "***"
	}
	if len(local) > 2 {
		local = local[:2]
	}

	return local + "***@" + domain
}

func maskPhone(phone string) string {
	if len(phone) > 4 {
		phone = phone[len(phone)-4:]
	}

	return "***" + phone
}

func maskIP(ip string) string {
	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		return ip
	}

	return parts[0] + "." + parts[1] + ".***.***"
}

func capitalizeWords(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	startOfWord := true
	for _, r := range input {
		if startOfWord && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		startOfWord = r == ' '
		b.WriteRune(r)
	}

	return b.String()
}
