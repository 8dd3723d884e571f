package sentry

import (
	"net/url"
	"strings"
)

const ReferrerParam = "referrer"

// AddReferrerParam sets the referrer query parameter on the given URL. Other parameters
// keep their order, blank ones are dropped. Unparsable URLs are returned as is.
func AddReferrerParam(rawURL string, referrer string) string {
	if referrer == "" {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parseOrderedQuery(u.RawQuery)
	query.set(ReferrerParam, referrer)
	u.RawQuery = query.encode()
	return u.String()
}

type queryParam struct {
	key    string
	values []string
}

type orderedQuery []*queryParam

func parseOrderedQuery(rawQuery string) orderedQuery {
	var query orderedQuery
	index := map[string]*queryParam{}
	for _, pair := range strings.Split(rawQuery, "&") {
		key, value := pair, ""
		if i := strings.Index(pair, "="); i >= 0 {
			key, value = pair[:i], pair[i+1:]
		}
		key, errKey := url.QueryUnescape(key)
		value, errValue := url.QueryUnescape(value)
		if errKey != nil || errValue != nil || value == "" {
			continue
		}
		param, ok := index[key]
		if !ok {
			param = &queryParam{key: key}
			index[key] = param
			query = append(query, param)
		}
		param.values = append(param.values, value)
	}
	return query
}

// set replaces the values of an existing key in place, or appends the key.
func (q *orderedQuery) set(key string, value string) {
	for _, param := range *q {
		if param.key == key {
			param.values = []string{value}
			return
		}
	}
	*q = append(*q, &queryParam{key: key, values: []string{value}})
}

func (q orderedQuery) encode() string {
	var b strings.Builder
	for _, param := range q {
		for _, value := range param.values {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(param.key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(value))
		}
	}
	return b.String()
}
