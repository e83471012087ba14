package model

import (
	"bytes"
	"encoding/json"
)

// Page is a list response. The backend sends either a paginated envelope
// ({"data": [...], "total": n, ...}) or a bare array; both decode into Page.
type Page[T any] struct {
	Data        []T `json:"data"`
	Total       int `json:"total"`
	PerPage     int `json:"per_page,omitempty"`
	CurrentPage int `json:"current_page,omitempty"`
	LastPage    int `json:"last_page,omitempty"`
}

func (p *Page[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = Page[T]{Data: []T{}}
		return nil
	}
	if len(b) > 0 && b[0] == '[' {
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		if items == nil {
			items = []T{}
		}
		*p = Page[T]{Data: items, Total: len(items), CurrentPage: 1, LastPage: 1}
		return nil
	}
	var e struct {
		Data        []T `json:"data"`
		Total       int `json:"total"`
		PerPage     int `json:"per_page"`
		CurrentPage int `json:"current_page"`
		LastPage    int `json:"last_page"`
	}
	if err := json.Unmarshal(b, &e); err != nil {
		return err
	}
	if e.Data == nil {
		e.Data = []T{}
	}
	*p = Page[T]{
		Data:        e.Data,
		Total:       e.Total,
		PerPage:     e.PerPage,
		CurrentPage: e.CurrentPage,
		LastPage:    e.LastPage,
	}
	return nil
}

// ListQuery carries the common list-screen parameters. Page is 1-based as on the wire.
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	Status  string
}
