package services

import "sync"

// MockEmailService records sent emails instead of delivering them. Used in
// development when no Resend API key is configured, and in tests.
type MockEmailService struct {
	mu   sync.Mutex
	sent []MockEmail

	// FailWith, when set, is returned by every send call
	FailWith error
}

// MockEmail is one recorded send
type MockEmail struct {
	To        string
	ResetLink string
}

// NewMockEmailService creates a new mock email service
func NewMockEmailService() *MockEmailService {
	return &MockEmailService{}
}

// SendPasswordResetEmail records the send
func (s *MockEmailService) SendPasswordResetEmail(email, resetLink string) error {
	if s.FailWith != nil {
		return s.FailWith
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, MockEmail{To: email, ResetLink: resetLink})
	return nil
}

// Sent returns a copy of every recorded send
func (s *MockEmailService) Sent() []MockEmail {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]MockEmail, len(s.sent))
	copy(out, s.sent)
	return out
}
