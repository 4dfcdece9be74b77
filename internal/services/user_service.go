package services

import (
	"gastropass_backend/internal/repositories"
	"gastropass_backend/internal/services/dto"
	"gastropass_backend/pkg/apperrors"
)

type UserService interface {
	Get(userID string) (*dto.UserDTO, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)
	List() (*dto.UserListResponse, error)
	Delete(requesterID, userID string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Get(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	res := dto.NewUserDTO(user)
	return &res, nil
}

func (s *userService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Estado != nil {
		user.Estado = *req.Estado
	}
	if req.Location != nil {
		user.Location = *req.Location
	}

	if err := s.userRepo.Save(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	res := dto.NewUserDTO(user)
	return &res, nil
}

func (s *userService) List() (*dto.UserListResponse, error) {
	users, err := s.userRepo.All()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	res := &dto.UserListResponse{Total: len(users)}
	for i := range users {
		res.Users = append(res.Users, dto.NewUserDTO(&users[i]))
	}
	return res, nil
}

func (s *userService) Delete(requesterID, userID string) error {
	if requesterID == userID {
		return apperrors.NewBadRequestError("Cannot delete your own account")
	}

	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
