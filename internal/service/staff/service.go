package staff

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
)

type StaffServiceImpl struct {
	staffRepo staff.StaffRepository
}

func NewStaffService(staffRepo staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{staffRepo: staffRepo}
}

func (s *StaffServiceImpl) List(ctx context.Context, userID string) (staff.StaffListResponse, error) {
	members, err := s.staffRepo.ListByUser(ctx, userID)
	if err != nil {
		return staff.StaffListResponse{}, err
	}

	responses := make([]staff.StaffResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, toStaffResponse(member))
	}

	return staff.StaffListResponse{Staff: responses, Total: len(responses)}, nil
}

func (s *StaffServiceImpl) Get(ctx context.Context, id string, userID string) (staff.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id, userID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return toStaffResponse(member), nil
}

func (s *StaffServiceImpl) Create(ctx context.Context, userID string, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	overtimeCharges := decimal.Zero
	if req.OvertimeCharges != nil {
		overtimeCharges = *req.OvertimeCharges
	}

	created, err := s.staffRepo.Create(ctx, staff.Staff{
		UserID:          userID,
		Name:            req.Name,
		PhoneNumber:     req.PhoneNumber,
		SalaryType:      staff.SalaryType(req.SalaryType),
		SalaryAmount:    req.SalaryAmount,
		OvertimeCharges: overtimeCharges,
	})
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return toStaffResponse(created), nil
}

func (s *StaffServiceImpl) Update(ctx context.Context, userID string, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.ID, userID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		member.PhoneNumber = *req.PhoneNumber
	}
	if req.SalaryType != nil {
		member.SalaryType = staff.SalaryType(*req.SalaryType)
	}
	if req.SalaryAmount != nil {
		member.SalaryAmount = *req.SalaryAmount
	}
	if req.OvertimeCharges != nil {
		member.OvertimeCharges = *req.OvertimeCharges
	}

	if err := s.staffRepo.Update(ctx, member); err != nil {
		return staff.StaffResponse{}, err
	}

	return toStaffResponse(member), nil
}

func (s *StaffServiceImpl) Delete(ctx context.Context, id string, userID string) error {
	return s.staffRepo.Delete(ctx, id, userID)
}

func toStaffResponse(member staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		ID:              member.ID,
		Name:            member.Name,
		PhoneNumber:     member.PhoneNumber,
		SalaryType:      string(member.SalaryType),
		SalaryAmount:    member.SalaryAmount.Round(2).InexactFloat64(),
		OvertimeCharges: member.OvertimeCharges.Round(2).InexactFloat64(),
		CreatedAt:       member.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       member.UpdatedAt.Format(time.RFC3339),
	}
}
