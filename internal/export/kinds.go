package export

import (
	"context"
	"strconv"

	"jobadmin/internal/model"
	"jobadmin/internal/service"
)

// Kind names an exportable list screen.
type Kind string

const (
	Employees    Kind = "employees"
	Employers    Kind = "employers"
	Jobs         Kind = "jobs"
	Commissions  Kind = "commissions"
	CVRequests   Kind = "cv-requests"
	Orders       Kind = "orders"
	Transactions Kind = "transactions"
)

// Kinds lists every exportable screen.
var Kinds = []Kind{Employees, Employers, Jobs, Commissions, CVRequests, Orders, Transactions}

// ParseKind accepts the names in Kinds.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Request selects what to export. Query narrows the list the same way the screen does;
// Role scopes commissions.
type Request struct {
	Kind  Kind
	Query model.ListQuery
	Actor model.Admin
	Role  string
}

type table struct {
	header []string
	rows   [][]string
}

func (s *exportService) build(ctx context.Context, req Request) (*table, error) {
	q := req.Query
	switch req.Kind {
	case Employees:
		items, err := collect(ctx, q, s.api.ListEmployees)
		if err != nil {
			return nil, err
		}
		t := &table{header: []string{"ID", "Name", "Email", "Mobile", "Gender", "City", "Plan", "Photo Status", "Joined"}}
		for _, e := range items {
			t.rows = append(t.rows, []string{id(e.ID), e.Name, e.Email, e.Mobile, e.Gender, city(e.Address), planName(e.Plan), e.ProfilePhotoStatus, date(e.CreatedAt)})
		}
		return t, nil

	case Employers:
		items, err := collect(ctx, q, s.api.ListEmployers)
		if err != nil {
			return nil, err
		}
		t := &table{header: []string{"ID", "Company", "Email", "Contact", "Industry", "City", "Plan", "Plan Active", "Plan Expires", "Joined"}}
		for _, e := range items {
			industry := ""
			if e.Industry != nil {
				industry = e.Industry.Name
			}
			t.rows = append(t.rows, []string{
				id(e.ID), e.CompanyName, e.Email, e.Contact, industry, city(e.Address), planName(e.Plan),
				strconv.FormatBool(e.PlanIsActive), date(e.PlanExpiresAt), date(e.CreatedAt),
			})
		}
		return t, nil

	case Jobs:
		items, err := collect(ctx, q, s.api.ListJobs)
		if err != nil {
			return nil, err
		}
		t := &table{header: []string{"ID", "Title", "Employer", "Location", "Category", "Salary", "Status", "Applications", "Posted"}}
		for _, j := range items {
			employer, location, category := "", "", ""
			if j.Employer != nil {
				employer = j.Employer.CompanyName
			}
			if j.Location != nil {
				location = j.Location.Label()
			}
			if j.Category != nil {
				category = j.Category.Name
			}
			t.rows = append(t.rows, []string{
				id(j.ID), j.Title, employer, location, category, j.Salary, j.Status,
				strconv.Itoa(j.ApplicationsCount), date(j.CreatedAt),
			})
		}
		return t, nil

	case Commissions:
		items, err := s.commissions(ctx, req)
		if err != nil {
			return nil, err
		}
		t := &table{header: []string{"ID", "Staff", "Type", "Coupon", "Transaction Amount", "Discount", "Earned", "Date"}}
		for _, c := range items {
			t.rows = append(t.rows, []string{
				id(c.ID), c.StaffName(), c.Type, c.CouponCode(), c.TransactionAmount.String(),
				c.DiscountAmount.String(), c.AmountEarned.String(), date(c.CreatedAt),
			})
		}
		return t, nil

	case CVRequests:
		items, err := s.api.ListCVRequests(ctx, q.Status)
		if err != nil {
			return nil, err
		}
		t := &table{header: []string{"ID", "Employee", "Email", "Price", "Payment", "Status", "Notes", "Requested"}}
		for _, r := range items {
			email := ""
			if r.Employee != nil {
				email = r.Employee.Email
			}
			t.rows = append(t.rows, []string{
				id(r.ID), r.EmployeeName(), email, r.Price.String(), r.PaymentStatus, r.Status, r.Notes, date(r.CreatedAt),
			})
		}
		return t, nil

	case Orders:
		items, err := collect(ctx, q, s.api.ListPlanOrders)
		if err != nil {
			return nil, err
		}
		t := &table{header: []string{"ID", "Order Number", "Buyer", "Plan", "Amount", "Status", "Date"}}
		for _, o := range items {
			t.rows = append(t.rows, []string{id(o.ID), o.OrderNumber, o.Buyer(), planName(o.Plan), o.Amount.String(), o.Status, date(o.CreatedAt)})
		}
		return t, nil

	case Transactions:
		items, err := collect(ctx, q, s.api.ListPaymentTransactions)
		if err != nil {
			return nil, err
		}
		t := &table{header: []string{"ID", "Transaction ID", "Payment ID", "Amount", "Method", "Status", "Error", "Date"}}
		for _, p := range items {
			t.rows = append(t.rows, []string{
				id(p.ID), p.TransactionID, p.PaymentID, p.Amount.String(), p.Method, p.Status, p.ErrorDescription, date(p.CreatedAt),
			})
		}
		return t, nil
	}
	return nil, ErrUnknownKind
}

// collect walks every page of a paged list, starting at the query's page.
func collect[T any](ctx context.Context, q model.ListQuery, fetch func(context.Context, model.ListQuery) (*model.Page[T], error)) ([]T, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = pageSize
	}
	var out []T
	for n := 0; n < maxPages; n++ {
		p, err := fetch(ctx, q)
		if err != nil {
			return nil, err
		}
		out = append(out, p.Data...)
		if len(p.Data) == 0 || p.LastPage <= q.Page {
			break
		}
		q.Page++
	}
	return out, nil
}

func (s *exportService) commissions(ctx context.Context, req Request) ([]model.Commission, error) {
	f := model.CommissionFilter{Page: 1, PerPage: pageSize}
	// The personal list is not paged.
	mine := service.CommissionScope(req.Role, false) == service.ScopeMine
	var out []model.Commission
	for n := 0; n < maxPages; n++ {
		res, err := s.commissionSvc.List(ctx, req.Role, false, f)
		if err != nil {
			return nil, err
		}
		out = append(out, res.Items...)
		if mine || len(res.Items) == 0 || len(out) >= res.Total {
			break
		}
		f.Page++
	}
	return out, nil
}

func id(v int64) string { return strconv.FormatInt(v, 10) }

func date(t model.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func city(a *model.Address) string {
	if a == nil {
		return ""
	}
	return a.City
}

func planName(p *model.Plan) string {
	if p == nil {
		return ""
	}
	return p.Name
}
