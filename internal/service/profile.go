package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"gorm.io/gorm"
)

var (
	phonePattern   = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

type ProfileService interface {
	Get(ctx context.Context, userID string) (*model.User, error)
	Update(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*model.User, error)
}

type profileServiceImpl struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileServiceImpl{userRepo: userRepo}
}

func (s *profileServiceImpl) Get(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, err
	}
	return user, nil
}

func (s *profileServiceImpl) Update(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*model.User, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		if *req.Name == "" || len(*req.Name) > 100 {
			return nil, apperr.Validation("Name must be between 1 and 100 characters", "name")
		}
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		if !phonePattern.MatchString(*req.Phone) {
			return nil, apperr.Validation("Phone must be a valid phone number", "phone")
		}
		taken, err := s.userRepo.ExistsByPhoneOther(ctx, *req.Phone, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Conflict(apperr.CodeUserAlreadyExists, "A user with this phone number already exists")
		}
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		if *req.Address == "" || len(*req.Address) > 500 {
			return nil, apperr.Validation("Address must be between 1 and 500 characters", "address")
		}
		updates["address"] = *req.Address
	}
	if req.City != nil {
		if *req.City == "" || len(*req.City) > 100 {
			return nil, apperr.Validation("City must be between 1 and 100 characters", "city")
		}
		updates["city"] = *req.City
	}
	if req.State != nil {
		if *req.State == "" || len(*req.State) > 100 {
			return nil, apperr.Validation("State must be between 1 and 100 characters", "state")
		}
		updates["state"] = *req.State
	}
	if req.Pincode != nil {
		if !pincodePattern.MatchString(*req.Pincode) {
			return nil, apperr.Validation("Pincode must be 6 digits", "pincode")
		}
		updates["pincode"] = *req.Pincode
	}
	if req.Landmark != nil {
		if len(*req.Landmark) > 200 {
			return nil, apperr.Validation("Landmark must be at most 200 characters", "landmark")
		}
		updates["landmark"] = *req.Landmark
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(ctx, userID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("User")
			}
			return nil, err
		}
	}

	return s.Get(ctx, userID)
}
