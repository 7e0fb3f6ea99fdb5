package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"gorm.io/gorm"
)

// AdminService backs the admin dashboard and store configuration surfaces.
type AdminService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	ListUsers(ctx context.Context, offset, limit int) ([]*model.User, int64, error)
	UpdateUser(ctx context.Context, id string, req *dto.AdminUserUpdateRequest) (*model.User, error)

	SupportInfo(ctx context.Context) (*model.SupportInfo, error)
	UpdateSupportInfo(ctx context.Context, req *dto.SupportRequest) (*model.SupportInfo, error)

	Settings(ctx context.Context) ([]*model.StoreSetting, error)
	SetSetting(ctx context.Context, key string, valueJSON json.RawMessage) (*model.StoreSetting, error)
	DeleteSetting(ctx context.Context, key string) error
}

type adminServiceImpl struct {
	userRepo    repository.UserRepository
	orderRepo   repository.OrderRepository
	supportRepo repository.SupportRepository
	settingRepo repository.SettingRepository
}

func NewAdminService(
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	supportRepo repository.SupportRepository,
	settingRepo repository.SettingRepository,
) AdminService {
	return &adminServiceImpl{
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		supportRepo: supportRepo,
		settingRepo: settingRepo,
	}
}

func (s *adminServiceImpl) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.SumCompletedRevenue(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.orderRepo.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TotalUsers:   totalUsers,
		TotalOrders:  totalOrders,
		TotalRevenue: revenue,
	}
	for _, order := range recent {
		userName := ""
		if order.User != nil {
			userName = order.User.Name
		}
		resp.RecentOrders = append(resp.RecentOrders, dto.RecentOrder{
			ID:            order.ID,
			UserID:        order.UserID,
			UserName:      userName,
			TotalPrice:    order.TotalPrice,
			Status:        string(order.Status),
			PaymentStatus: string(order.PaymentStatus),
			CreatedAt:     order.CreatedAt,
		})
	}
	return resp, nil
}

func (s *adminServiceImpl) ListUsers(ctx context.Context, offset, limit int) ([]*model.User, int64, error) {
	return s.userRepo.List(ctx, offset, limit)
}

func (s *adminServiceImpl) UpdateUser(ctx context.Context, id string, req *dto.AdminUserUpdateRequest) (*model.User, error) {
	updates := map[string]interface{}{}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Role != nil {
		switch model.UserRole(*req.Role) {
		case model.RoleCustomer, model.RoleAdmin:
			updates["role"] = *req.Role
		default:
			return nil, apperr.Validation("Invalid role", "role")
		}
	}
	if len(updates) == 0 {
		return nil, apperr.BadRequest("Nothing to update")
	}

	if err := s.userRepo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, err
	}
	return s.userRepo.FindByID(ctx, id)
}

func (s *adminServiceImpl) SupportInfo(ctx context.Context) (*model.SupportInfo, error) {
	info, err := s.supportRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Support info")
		}
		return nil, err
	}
	return info, nil
}

func (s *adminServiceImpl) UpdateSupportInfo(ctx context.Context, req *dto.SupportRequest) (*model.SupportInfo, error) {
	updates := map[string]interface{}{}
	put := func(key string, v *string) {
		if v != nil {
			updates[key] = *v
		}
	}
	put("phone", req.Phone)
	put("email", req.Email)
	put("whatsapp", req.Whatsapp)
	put("address", req.Address)
	put("hours", req.Hours)
	if len(updates) == 0 {
		return nil, apperr.BadRequest("Nothing to update")
	}

	return s.supportRepo.Upsert(ctx, updates)
}

func (s *adminServiceImpl) Settings(ctx context.Context) ([]*model.StoreSetting, error) {
	return s.settingRepo.GetAll(ctx)
}

func (s *adminServiceImpl) SetSetting(ctx context.Context, key string, valueJSON json.RawMessage) (*model.StoreSetting, error) {
	if key == "" {
		return nil, apperr.Validation("Key is required", "key")
	}
	if len(valueJSON) > 0 && !json.Valid(valueJSON) {
		return nil, apperr.Validation("Value must be valid JSON", "valueJson")
	}
	return s.settingRepo.Set(ctx, key, valueJSON)
}

func (s *adminServiceImpl) DeleteSetting(ctx context.Context, key string) error {
	err := s.settingRepo.Delete(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Setting")
	}
	return err
}
