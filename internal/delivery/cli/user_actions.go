package cli

import (
	"context"
	"fmt"

	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
)

func (r *Runner) registerUser(ctx context.Context, session *dto.Session) {
	fmt.Fprintln(r.out, "\n=== REGISTER A STAFF ACCOUNT ===")

	req := &dto.RegisterUserRequest{
		LastName:  r.prompter.Line("Last name"),
		FirstName: r.prompter.Line("First name"),
		Email:     r.prompter.Line("Email"),
		Password:  r.prompter.Line("Password"),
		Role:      r.prompter.Choice("Role", []string{string(entity.RolePractitioner), string(entity.RoleSecretary)}),
		Phone:     r.prompter.Optional("Phone"),
	}
	if req.Role == string(entity.RolePractitioner) {
		req.Specialty = r.prompter.Optional("Specialty")
	}

	if err := r.validator.Validate(req); err != nil {
		fmt.Fprintf(r.out, "✗ %s\n", r.validator.Message(err))
		return
	}

	user, err := r.userUsecase.RegisterUser(ctx, &session.UserID, req)
	if err != nil {
		r.fail(err)
		return
	}

	fmt.Fprintf(r.out, "✓ Account created (ID: %d)\n", user.ID)
}
