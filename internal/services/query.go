package services

import (
	"procurement-api/internal/infrastructure/bd"
	"procurement-api/pkg/types"
)

// Each List*Query turns its typed fields into explicit conditions. Extra carries
// the generic filter[...] parameters, which are checked against the table columns.

type ListUsersQuery struct {
	Username string
	Email    string
	Role     string
	Extra    []bd.Condition
	types.Page
}

func (q ListUsersQuery) Filter() bd.ListFilter {
	var conds []bd.Condition
	if q.Username != "" {
		conds = append(conds, bd.Contains("username", q.Username))
	}
	if q.Email != "" {
		conds = append(conds, bd.Contains("email", q.Email))
	}
	if q.Role != "" {
		conds = append(conds, bd.Equals("role", q.Role))
	}
	return bd.NewListFilter(q.Page, append(conds, q.Extra...)...)
}

type ListClientsQuery struct {
	Name        string
	Email       string
	CompanyName string
	Extra       []bd.Condition
	types.Page
}

func (q ListClientsQuery) Filter() bd.ListFilter {
	var conds []bd.Condition
	if q.Name != "" {
		conds = append(conds, bd.Contains("name", q.Name))
	}
	if q.Email != "" {
		conds = append(conds, bd.Contains("email", q.Email))
	}
	if q.CompanyName != "" {
		conds = append(conds, bd.Contains("company_name", q.CompanyName))
	}
	return bd.NewListFilter(q.Page, append(conds, q.Extra...)...)
}

type ListEquipmentQuery struct {
	Category     string
	Status       string
	Manufacturer string
	Extra        []bd.Condition
	types.Page
}

func (q ListEquipmentQuery) Filter() bd.ListFilter {
	var conds []bd.Condition
	if q.Category != "" {
		conds = append(conds, bd.Equals("category", q.Category))
	}
	if q.Status != "" {
		conds = append(conds, bd.Equals("status", q.Status))
	}
	if q.Manufacturer != "" {
		conds = append(conds, bd.Equals("manufacturer", q.Manufacturer))
	}
	return bd.NewListFilter(q.Page, append(conds, q.Extra...)...)
}

type ListRequestsQuery struct {
	ClientID          *uint64
	EquipmentCategory string
	Status            string
	Priority          string
	MinBudget         *float64
	MaxBudget         *float64
	Extra             []bd.Condition
	types.Page
}

func (q ListRequestsQuery) Filter() bd.ListFilter {
	var conds []bd.Condition
	if q.ClientID != nil {
		conds = append(conds, bd.Equals("client_id", *q.ClientID))
	}
	if q.EquipmentCategory != "" {
		conds = append(conds, bd.Equals("equipment_category", q.EquipmentCategory))
	}
	if q.Status != "" {
		conds = append(conds, bd.Equals("status", q.Status))
	}
	if q.Priority != "" {
		conds = append(conds, bd.Equals("priority", q.Priority))
	}
	if q.MinBudget != nil {
		conds = append(conds, bd.GreaterOrEqual("budget_min", *q.MinBudget))
	}
	if q.MaxBudget != nil {
		conds = append(conds, bd.LessOrEqual("budget_max", *q.MaxBudget))
	}
	return bd.NewListFilter(q.Page, append(conds, q.Extra...)...)
}

type ListOffersQuery struct {
	RequestID   *uint64
	EquipmentID *uint64
	Status      string
	MinPrice    *float64
	MaxPrice    *float64
	Extra       []bd.Condition
	types.Page
}

func (q ListOffersQuery) Filter() bd.ListFilter {
	var conds []bd.Condition
	if q.RequestID != nil {
		conds = append(conds, bd.Equals("request_id", *q.RequestID))
	}
	if q.EquipmentID != nil {
		conds = append(conds, bd.Equals("equipment_id", *q.EquipmentID))
	}
	if q.Status != "" {
		conds = append(conds, bd.Equals("status", q.Status))
	}
	if q.MinPrice != nil {
		conds = append(conds, bd.GreaterOrEqual("price", *q.MinPrice))
	}
	if q.MaxPrice != nil {
		conds = append(conds, bd.LessOrEqual("price", *q.MaxPrice))
	}
	return bd.NewListFilter(q.Page, append(conds, q.Extra...)...)
}
