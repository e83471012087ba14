package backend

import (
	"net/url"
	"strconv"

	"jobadmin/internal/model"
)

// listValues renders the list-screen parameters, skipping zero values.
func listValues(q model.ListQuery) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	return v
}

func commissionValues(f model.CommissionFilter) url.Values {
	v := listValues(model.ListQuery{Page: f.Page, PerPage: f.PerPage})
	if f.StaffID != "" {
		v.Set("staff_id", f.StaffID)
	}
	if f.Type != "" {
		v.Set("type", f.Type)
	}
	if f.StartDate != "" {
		v.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("end_date", f.EndDate)
	}
	return v
}
