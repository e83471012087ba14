package service

import (
	"context"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
	"jobadmin/internal/rbac"
)

// Commission scopes: a super admin sees everything, a manager sees the team, others only their own.
const (
	ScopeAll  = "all"
	ScopeTeam = "team"
	ScopeMine = "mine"
)

// CommissionScope picks the list an admin gets. mine forces the personal list for any role.
func CommissionScope(role string, mine bool) string {
	switch {
	case mine:
		return ScopeMine
	case rbac.IsSuperAdmin(role):
		return ScopeAll
	case rbac.HasRole(role, rbac.Manager):
		return ScopeTeam
	}
	return ScopeMine
}

type CommissionService interface {
	List(ctx context.Context, role string, mine bool, f model.CommissionFilter) (*model.CommissionList, error)
	AddManual(ctx context.Context, in model.ManualCommission) error
}

type commissionService struct {
	api backend.API
}

func NewCommissionService(api backend.API) CommissionService {
	return &commissionService{api: api}
}

func (s *commissionService) List(ctx context.Context, role string, mine bool, f model.CommissionFilter) (*model.CommissionList, error) {
	var (
		res *backend.CommissionResponse
		err error
	)
	switch CommissionScope(role, mine) {
	case ScopeAll:
		res, err = s.api.AllCommissions(ctx, f)
	case ScopeTeam:
		res, err = s.api.ManagerCommissions(ctx, f)
	default:
		res, err = s.api.MyCommissions(ctx)
	}
	if err != nil {
		return nil, err
	}
	return normalizeCommissions(res), nil
}

func normalizeCommissions(res *backend.CommissionResponse) *model.CommissionList {
	out := &model.CommissionList{
		Items:     res.Commissions.Data,
		Total:     res.Commissions.Total,
		StaffList: res.StaffList,
	}
	if out.Items == nil {
		out.Items = []model.Commission{}
	}
	if out.Total == 0 {
		out.Total = len(out.Items)
	}
	switch {
	case res.TotalEarnings != nil && *res.TotalEarnings != 0:
		out.TotalEarnings = *res.TotalEarnings
	case res.TotalEarned != nil:
		out.TotalEarnings = *res.TotalEarned
	}
	return out
}

func (s *commissionService) AddManual(ctx context.Context, in model.ManualCommission) error {
	if in.StaffID == 0 {
		return invalid("Please select a staff member")
	}
	if in.AmountEarned <= 0 {
		return invalid("Amount must be greater than 0")
	}
	return s.api.AddManualCommission(ctx, in)
}
