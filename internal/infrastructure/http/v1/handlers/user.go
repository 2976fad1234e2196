package handlers

import (
	"adboard/internal/domain/user"
	"adboard/internal/infrastructure/http/v1/dto"
)

// UserHandler serves the /user resource.
type UserHandler struct {
	*ResourceHandler[*user.User, dto.CreateUserRequest, dto.PatchUserRequest, dto.UserResponse]
}

// NewUserHandler creates the user handler.
func NewUserHandler(service *user.Service, pageSize int) *UserHandler {
	return &UserHandler{
		ResourceHandler: NewResourceHandler[*user.User, dto.CreateUserRequest, dto.PatchUserRequest](
			ResourceHandlerConfig[*user.User, dto.UserResponse]{
				Service:    service,
				ToDTO:      dto.FromUser,
				EntityName: "user",
				PageSize:   pageSize,
			},
		),
	}
}
