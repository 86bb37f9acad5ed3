// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination reads page windows from list requests and describes the
// returned window in the response "meta" object.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
	FirstPage    = 1
)

// Params is a 1-indexed page window.
type Params struct {
	Page  int
	Limit int
}

// Offset is the number of rows that precede the window.
func (params Params) Offset() int {
	if params.Page <= FirstPage {
		return 0
	}
	return (params.Page - 1) * params.Limit
}

// Meta describes a served window.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// NewMeta describes params against a result set of total rows.
func NewMeta(params Params, total int) Meta {
	pages := 0
	if params.Limit > 0 {
		pages = (total + params.Limit - 1) / params.Limit
	}

	return Meta{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: pages,
		HasNext:    params.Page < pages,
	}
}

/*
FromRequest reads the "page" and "limit" query parameters.

Description: Missing or unparsable values fall back to the defaults. A page
below one becomes the first page and a limit above [MaxLimit] is capped.
*/
func FromRequest(request *http.Request) Params {
	query := request.URL.Query()

	params := Params{
		Page:  queryInt(query.Get("page"), FirstPage),
		Limit: queryInt(query.Get("limit"), DefaultLimit),
	}
	if params.Page < FirstPage {
		params.Page = FirstPage
	}
	switch {
	case params.Limit < 1:
		params.Limit = DefaultLimit
	case params.Limit > MaxLimit:
		params.Limit = MaxLimit
	}
	return params
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
