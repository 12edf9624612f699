// Package validate enforces per-field acceptance criteria for contact
// submissions and computes the spam heuristic. Validators are pure and never
// panic; a failure is always expressed as a Result, not an error.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/contact-api/internal/sanitize"
)

// SpamThreshold is the policy constant above which a submission is flagged.
const SpamThreshold = 3

var (
	fieldValidator = validator.New(validator.WithRequiredStructEnabled())

	nameChars = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
	nonDigit  = regexp.MustCompile(`\D`)

	statuses   = []string{"new", "read", "replied", "archived"}
	priorities = []string{"low", "medium", "high"}

	spamKeywords = []string{
		"casino",
		"lottery",
		"winner",
		"congratulations",
		"viagra",
		"cialis",
		"penis",
		"enlargement",
		"weight loss",
		"make money",
		"work from home",
		"free money",
		"click here",
		"act now",
		"limited time",
		"urgent",
		"immediate",
		"bitcoin",
		"cryptocurrency",
	}
)

// Result reports a single field check.
type Result struct {
	Valid   bool   `json:"isValid"`
	Message string `json:"message"`
}

func valid(message string) Result {
	return Result{Valid: true, Message: message}
}

func invalid(message string) Result {
	return Result{Valid: false, Message: message}
}

// Email requires a standard address grammar.
func Email(email string) Result {
	if email == "" {
		return invalid("Email is required")
	}

	if err := fieldValidator.Var(email, "email"); err != nil {
		return invalid("Please provide a valid email address")
	}

	return valid("Valid email")
}

// Phone accepts 10 to 15 digits after stripping everything non-numeric.
// Absent input is valid unless required is set.
func Phone(phone string, required bool) Result {
	if phone == "" {
		if required {
			return invalid("Phone number is required")
		}
		return valid("Phone number is optional")
	}

	digits := nonDigit.ReplaceAllString(phone, "")
	if len(digits) < 10 || len(digits) > 15 {
		return invalid("Phone number must be between 10-15 digits")
	}

	return valid("Valid phone number")
}

// Name requires a trimmed length of 2 to 50 characters limited to letters,
// spaces, hyphens and apostrophes. field labels the error messages.
func Name(name, field string) Result {
	if field == "" {
		field = "Name"
	}
	if name == "" {
		return invalid(field + " is required")
	}

	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return invalid(field + " must be at least 2 characters long")
	}
	if len(trimmed) > 50 {
		return invalid(field + " cannot exceed 50 characters")
	}
	if !nameChars.MatchString(trimmed) {
		return invalid(field + " contains invalid characters")
	}

	return valid("Valid " + strings.ToLower(field))
}

// Subject requires a trimmed length of 5 to 100 characters. Lengths count
// characters, not bytes, so multibyte input measures the same as ASCII.
func Subject(subject string) Result {
	if subject == "" {
		return invalid("Subject is required")
	}

	trimmed := strings.TrimSpace(subject)
	length := utf8.RuneCountInString(trimmed)
	if length < 5 {
		return invalid("Subject must be at least 5 characters long")
	}
	if length > 100 {
		return invalid("Subject cannot exceed 100 characters")
	}

	return valid("Valid subject")
}

// Message requires a trimmed length of 10 to 1000 characters, counted the
// same way as Subject.
func Message(message string) Result {
	if message == "" {
		return invalid("Message is required")
	}

	trimmed := strings.TrimSpace(message)
	length := utf8.RuneCountInString(trimmed)
	if length < 10 {
		return invalid("Message must be at least 10 characters long")
	}
	if length > 1000 {
		return invalid("Message cannot exceed 1000 characters")
	}

	return valid("Valid message")
}

// Status requires one of the known contact statuses.
func Status(status string) Result {
	if status == "" {
		return invalid("Status is required")
	}

	if !contains(statuses, status) {
		return invalid("Status must be one of: " + strings.Join(statuses, ", "))
	}

	return valid("Valid status")
}

// Priority accepts absence (defaults downstream) or one of the known levels.
func Priority(priority string) Result {
	if priority == "" {
		return valid("Priority is optional, defaults to medium")
	}

	if !contains(priorities, priority) {
		return invalid("Priority must be one of: " + strings.Join(priorities, ", "))
	}

	return valid("Valid priority")
}

// ID requires a positive integer record identifier.
func ID(id string) Result {
	if id == "" {
		return invalid("ID is required")
	}

	parsed, err := strconv.ParseUint(id, 10, 64)
	if err != nil || parsed == 0 {
		return invalid("Invalid ID format")
	}

	return valid("Valid ID")
}

// Pagination checks page and limit independently and concatenates the
// failures. Empty values are valid and default downstream.
func Pagination(page, limit string) Result {
	var errs []string

	if page != "" {
		parsed, err := strconv.Atoi(page)
		if err != nil || parsed < 1 {
			errs = append(errs, "Page must be a positive integer")
		}
	}

	if limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed < 1 || parsed > 100 {
			errs = append(errs, "Limit must be a positive integer between 1 and 100")
		}
	}

	if len(errs) > 0 {
		return invalid(strings.Join(errs, ", "))
	}

	return valid("Valid pagination parameters")
}

// SpamResult carries the spam heuristic outcome. It is informational and
// never invalidates a submission on its own.
type SpamResult struct {
	IsSpam  bool   `json:"isSpam"`
	Score   int    `json:"score"`
	Message string `json:"message"`
}

// CheckSpam scores the lowercased subject, message and email blob: one point
// per keyword occurrence, two per http:// or https:// link. Keywords match
// as substrings without word-boundary anchoring.
func CheckSpam(form sanitize.Form) SpamResult {
	content := strings.ToLower(fmt.Sprintf("%s %s %s", form.Subject, form.Message, form.Email))

	score := 0
	for _, keyword := range spamKeywords {
		score += strings.Count(content, keyword)
	}

	links := strings.Count(content, "http://") + strings.Count(content, "https://")
	score += links * 2

	if score >= SpamThreshold {
		return SpamResult{IsSpam: true, Score: score, Message: "Content flagged as potential spam"}
	}

	return SpamResult{IsSpam: false, Score: score, Message: "Content appears legitimate"}
}

// FormResult aggregates every failing field message plus the spam check.
type FormResult struct {
	Valid  bool       `json:"isValid"`
	Errors []string   `json:"errors"`
	Spam   SpamResult `json:"spamCheck"`
}

// ContactForm runs the field validators in a fixed order (first name, last
// name, email, subject, message, then phone when present) and collects every
// failure so the caller can fix everything in one round trip.
func ContactForm(form sanitize.Form) FormResult {
	errs := []string{}

	checks := []Result{
		Name(form.FirstName, "First name"),
		Name(form.LastName, "Last name"),
		Email(form.Email),
		Subject(form.Subject),
		Message(form.Message),
	}
	if form.Phone != "" {
		checks = append(checks, Phone(form.Phone, false))
	}

	for _, check := range checks {
		if !check.Valid {
			errs = append(errs, check.Message)
		}
	}

	return FormResult{
		Valid:  len(errs) == 0,
		Errors: errs,
		Spam:   CheckSpam(form),
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}
