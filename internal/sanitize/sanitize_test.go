package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringStripsMarkup(t *testing.T) {
	out := String(`Hello <script>alert("x")</script>world`, DefaultOptions())
	require.Equal(t, "Hello world", out)

	out = String("<b>bold</b> text", DefaultOptions())
	require.Equal(t, "bold text", out)
}

func TestStringIdempotent(t *testing.T) {
	inputs := []string{
		"  plain text  ",
		"a <i>tagged</i> value",
		"keep & ampersand",
		"I <3 whitespace   runs",
	}
	for _, input := range inputs {
		once := String(input, DefaultOptions())
		twice := String(once, DefaultOptions())
		require.Equal(t, once, twice, "input %q", input)
	}
}

func TestStringOptions(t *testing.T) {
	require.Equal(t, "abc def", String("  ABC   DEF  ", Options{Trim: true, Lowercase: true, CollapseSpaces: true}))
	require.Equal(t, "&lt;kept&gt;", String("<kept>", Options{EscapeHTML: true}))
	require.Equal(t, "", String("", DefaultOptions()))
}

func TestEmail(t *testing.T) {
	require.Equal(t, "john.doe@example.com", Email(" John.Doe@EXAMPLE.com "))
	require.Equal(t, "user+tag@example.com", Email("User+Tag@example.com"), "subaddress is preserved")
	require.Equal(t, "", Email("not-an-email"))
	require.Equal(t, "", Email(""))
}

func TestPhone(t *testing.T) {
	require.Equal(t, "+15551234567", Phone("+1 (555) 123-4567"))
	require.Equal(t, "5551234567", Phone("555.123.4567"))
	require.Equal(t, "5551234567", Phone("555+123+4567"), "non-leading plus is removed")
	require.Equal(t, "", Phone(""))
}

func TestName(t *testing.T) {
	require.Equal(t, "John O'brien", Name("john o'brien"))
	require.Equal(t, "Mary-jane", Name("mary-jane"))
	require.Equal(t, "Jane Doe", Name("  jane   doe  "))
	require.Equal(t, "Jane", Name("jane123!"))
	require.Equal(t, "", Name(""))
}

func TestMessagePreservesLineBreaks(t *testing.T) {
	require.Equal(t, "line one\nline two", Message("line one\nline two"))
	require.Equal(t, "a\n\nb", Message("a\n\n\n\nb"), "runs of 3+ newlines collapse to 2")
	require.Equal(t, "a\n\nb", Message("a\n\nb"))
}

func TestIP(t *testing.T) {
	require.Equal(t, "203.0.113.9", IP("203.0.113.9, 10.0.0.1"))
	require.Equal(t, "2001:db8::1", IP(" 2001:db8::1 "))
	require.Equal(t, "", IP("not-an-ip"))
	require.Equal(t, "", IP(""))
}

func TestUserAgentTruncates(t *testing.T) {
	long := strings.Repeat("a", 600)
	require.Len(t, UserAgent(long), UserAgentMaxLen)
	require.Equal(t, "Mozilla/5.0", UserAgent(" Mozilla/5.0 "))
}

func TestContactForm(t *testing.T) {
	out := ContactForm(Form{
		FirstName: "jane",
		LastName:  "doe",
		Email:     "JANE@EXAMPLE.COM",
		Phone:     "555-123-4567",
		Subject:   "Hello there",
		Message:   "This is a test message.",
		IPAddress: "203.0.113.9",
		UserAgent: "curl/8.0",
		Status:    " NEW ",
		Priority:  "High",
	})

	require.Equal(t, "Jane", out.FirstName)
	require.Equal(t, "Doe", out.LastName)
	require.Equal(t, "jane@example.com", out.Email)
	require.Equal(t, "5551234567", out.Phone)
	require.Equal(t, "Hello there", out.Subject)
	require.Equal(t, "This is a test message.", out.Message)
	require.Equal(t, "203.0.113.9", out.IPAddress)
	require.Equal(t, "new", out.Status)
	require.Equal(t, "high", out.Priority)
}

func TestContactFormOmitsAbsentFields(t *testing.T) {
	out := ContactForm(Form{FirstName: "jane"})
	require.Equal(t, "Jane", out.FirstName)
	require.Empty(t, out.Email)
	require.Empty(t, out.Phone)
	require.Empty(t, out.Status)
}

func TestForLogging(t *testing.T) {
	masked := ForLogging(Form{
		Email:     "jane@example.com",
		Phone:     "5551234567",
		IPAddress: "203.0.113.9",
	})

	require.Equal(t, "ja***@example.com", masked.Email)
	require.Equal(t, "***4567", masked.Phone)
	require.Equal(t, "203.0.***.***", masked.IPAddress)
}

func TestForLoggingLeavesIPv6(t *testing.T) {
	masked := ForLogging(Form{IPAddress: "2001:db8::1"})
	require.Equal(t, "2001:db8::1", masked.IPAddress)
}
