package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/boisserenc/atelier/internal/domain"
)

// ContactService handles contact form submissions.
type ContactService struct {
	messages domain.ContactMessageRepository
}

// NewContactService creates a new ContactService.
func NewContactService(messages domain.ContactMessageRepository) *ContactService {
	return &ContactService{messages: messages}
}

// CreateContactMessage validates and stores a contact form submission.
// Nothing is stored when validation fails.
func (s *ContactService) CreateContactMessage(ctx context.Context, in domain.InsertContactMessage) (*domain.ContactMessage, error) {
	if err := ValidateContactMessage(in); err != nil {
		return nil, err
	}

	msg, err := s.messages.Create(ctx, in)
	if err != nil {
		return nil, storeFailure("create contact message", err)
	}
	return msg, nil
}

type fieldRule struct {
	name     string
	value    string
	required bool
	max      int
}

// ValidateContactMessage checks a submission and returns an *InputError
// naming every failing field, or nil.
func ValidateContactMessage(in domain.InsertContactMessage) error {
	rules := []fieldRule{
		{name: "name", value: in.Name, required: true, max: 100},
		{name: "email", value: in.Email, required: true, max: 254},
		{name: "phone", value: deref(in.Phone), max: 40},
		{name: "service", value: deref(in.Service), max: 50},
		{name: "message", value: in.Message, required: true, max: 5000},
	}

	var problems []string
	for _, r := range rules {
		switch {
		case r.required && strings.TrimSpace(r.value) == "":
			problems = append(problems, r.name+" is required")
		case utf8.RuneCountInString(r.value) > r.max:
			problems = append(problems, fmt.Sprintf("%s must be %d characters or fewer", r.name, r.max))
		case r.name == "email" && !validEmail(r.value):
			problems = append(problems, "email must be a valid email address")
		}
	}

	if len(problems) > 0 {
		return domain.NewInputError("Validation error: %s", strings.Join(problems, "; "))
	}
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	// Reject display-name forms like "Marie <marie@example.com>".
	return err == nil && addr.Address == s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
