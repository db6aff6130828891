package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/usecase"
	"clinic-manager/pkg/validator"

	"github.com/sirupsen/logrus"
)

type stubAuthUsecase struct{}

func (stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.Session, error) {
	return &dto.Session{UserID: 1, LastName: "Diop", FirstName: "Amadou", Role: "practitioner"}, nil
}

func newTestRunner(input string, auth usecase.AuthUsecase) (*Runner, *bytes.Buffer) {
	out := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewRunner(strings.NewReader(input), out, log, validator.NewValidator(), auth, nil, nil, nil), out
}

// The console must terminate when its input ends, for example when piped
// input runs out, instead of re-prompting forever.
func TestRunExitsWhenInputEnds(t *testing.T) {
	r, out := newTestRunner("", nil)

	r.Run(context.Background())

	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("output should end with the goodbye line, got %q", out.String())
	}
}

// Input ending mid-session, after a successful login, must log out and
// terminate rather than loop on the menu.
func TestRunExitsWhenInputEndsMidSession(t *testing.T) {
	r, out := newTestRunner("dr.diop@clinic.example\npassword123\n", stubAuthUsecase{})

	r.Run(context.Background())

	if !strings.Contains(out.String(), "Welcome Diop Amadou") {
		t.Errorf("login should have succeeded, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("console should have terminated, got %q", out.String())
	}
}

func TestRunExitsOnCancelledContext(t *testing.T) {
	r, _ := newTestRunner("whatever\n", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Must return without consuming any input.
	r.Run(ctx)
}
