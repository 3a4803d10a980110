package user

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// recordingMailer captures outgoing mail for assertions.
type recordingMailer struct {
	tempPasswords map[string]string
	welcomes      []string
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{tempPasswords: make(map[string]string)}
}

func (m *recordingMailer) SendTemporaryPassword(to, name, tempPassword string) error {
	m.tempPasswords[to] = tempPassword
	return nil
}

func (m *recordingMailer) SendWelcome(to, name string) error {
	m.welcomes = append(m.welcomes, to)
	return nil
}

func newTestService() (*Service, *recordingMailer) {
	mail := newRecordingMailer()
	return NewService(NewInMemoryRepository(nil), mail), mail
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, mail := newTestService()

	created, err := svc.Register(User{Email: "Amelie@Example.com", Password: "hunter22", Name: "Amelie"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created.Email != "amelie@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if created.Password == "hunter22" {
		t.Fatalf("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("hunter22")) != nil {
		t.Fatalf("stored hash does not match the password")
	}
	if len(mail.welcomes) != 1 || mail.welcomes[0] != "amelie@example.com" {
		t.Fatalf("expected a welcome mail, got %v", mail.welcomes)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(User{Email: "not-an-email", Password: "hunter22"}); err != ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := svc.Register(User{Email: "a@b.co", Password: "short"}); err != ErrWeakPassword {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}

	if _, err := svc.Register(User{Email: "a@b.co", Password: "hunter22"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(User{Email: "a@b.co", Password: "hunter23"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Register(User{Email: "a@b.co", Password: "hunter22", Name: "A"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	u, err := svc.Authenticate("a@b.co", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if u.Email != "a@b.co" {
		t.Fatalf("unexpected user %q", u.Email)
	}

	if _, err := svc.Authenticate("a@b.co", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Authenticate("ghost@b.co", "hunter22"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestPasswordReset_IssuesTemporaryPassword(t *testing.T) {
	svc, mail := newTestService()
	if _, err := svc.Register(User{Email: "a@b.co", Password: "hunter22", Name: "A"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.InitiatePasswordReset("a@b.co"); err != nil {
		t.Fatalf("InitiatePasswordReset: %v", err)
	}

	temp, ok := mail.tempPasswords["a@b.co"]
	if !ok || temp == "" {
		t.Fatalf("no temporary password was mailed")
	}

	// old password no longer works, the temporary one does
	if _, err := svc.Authenticate("a@b.co", "hunter22"); err != ErrInvalidCredentials {
		t.Fatalf("old password still accepted after reset")
	}
	u, err := svc.Authenticate("a@b.co", temp)
	if err != nil {
		t.Fatalf("temporary password rejected: %v", err)
	}
	if !u.MustChangePassword {
		t.Fatalf("MustChangePassword not set after reset")
	}

	// changing the password clears the flag
	if err := svc.ChangePassword("a@b.co", temp, "fresh-secret"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	u, _ = svc.GetByEmail("a@b.co")
	if u.MustChangePassword {
		t.Fatalf("MustChangePassword still set after change")
	}
}

func TestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	svc, mail := newTestService()
	if err := svc.InitiatePasswordReset("ghost@b.co"); err != nil {
		t.Fatalf("expected silent success for unknown email, got %v", err)
	}
	if len(mail.tempPasswords) != 0 {
		t.Fatalf("mail sent for unknown account")
	}
}

func TestRecordView_CapsHistory(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Register(User{Email: "a@b.co", Password: "hunter22", Name: "A"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	for i := 0; i < viewHistoryCap+5; i++ {
		if err := svc.RecordView("a@b.co", "Lips"); err != nil {
			t.Fatalf("RecordView: %v", err)
		}
	}
	u, _ := svc.GetByEmail("a@b.co")
	if len(u.ViewHistory) != viewHistoryCap {
		t.Fatalf("history length = %d, want %d", len(u.ViewHistory), viewHistoryCap)
	}

	if err := svc.RecordView("ghost@b.co", "Lips"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}
