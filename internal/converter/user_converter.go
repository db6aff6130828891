package converter

import (
	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        user.ID,
		LastName:  user.LastName,
		FirstName: user.FirstName,
		Email:     user.Email,
		Role:      string(user.Role),
		Specialty: user.Specialty,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}

// UsersToPractitionerSummaries converts practitioner rows to directory entries.
func UsersToPractitionerSummaries(users []entity.User) []dto.PractitionerSummary {
	summaries := make([]dto.PractitionerSummary, len(users))
	for i, user := range users {
		summaries[i] = dto.PractitionerSummary{
			ID:        user.ID,
			LastName:  user.LastName,
			FirstName: user.FirstName,
			Specialty: user.Specialty,
			Phone:     user.Phone,
		}
	}
	return summaries
}
