package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"valilik-yonetim/pkg/types"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParseFilterFromQuery, liste uçlarının ortak query sözleşmesini çözer:
// search, sort[alan]=asc|desc, filter[alan]=deger(,deger2), page, limit, offset, withPagination.
func ParseFilterFromQuery(query url.Values) types.Filter {
	filterReq := types.Filter{
		Sort:   make(map[string]string),
		Filter: make(map[string]interface{}),
		Limit:  DefaultLimit,
		Page:   1,
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				filterReq.Limit = MaxLimit
			} else {
				filterReq.Limit = l
			}
		}
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filterReq.Offset = o
			if filterReq.Limit > 0 {
				filterReq.Page = (o / filterReq.Limit) + 1
			}
		}
	}

	// page yalnızca offset verilmemişse dikkate alınır
	if pageStr := query.Get("page"); pageStr != "" && filterReq.Offset == 0 {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			filterReq.Page = p
			filterReq.Offset = (p - 1) * filterReq.Limit
		}
	}

	filterReq.Search = query.Get("search")
	filterReq.WithPagination, _ = strconv.ParseBool(query.Get("withPagination"))

	for key, vals := range query {
		if len(vals) == 0 {
			continue
		}

		if strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]") {
			field := key[5 : len(key)-1]
			direction := strings.ToLower(vals[0])
			if direction == "asc" || direction == "desc" {
				filterReq.Sort[field] = direction
			}
			continue
		}

		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			field := key[7 : len(key)-1]
			for _, val := range vals {
				if existing, ok := filterReq.Filter[field]; ok {
					filterReq.Filter[field] = fmt.Sprintf("%v,%s", existing, val)
				} else {
					filterReq.Filter[field] = val
				}
			}
		}
	}

	return filterReq
}
