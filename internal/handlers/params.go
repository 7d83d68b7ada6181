package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// SharerHeader carries the acting-user identity on every authenticated call.
const SharerHeader = "X-Sharer-User-Id"

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not. It also supports the
// standard net/http PathValue API available in recent Go versions.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

func parseActingUserID(r *http.Request) (int, error) {
	val := strings.TrimSpace(r.Header.Get(SharerHeader))
	if val == "" {
		return 0, fmt.Errorf("missing %s header", SharerHeader)
	}
	id, err := strconv.Atoi(val)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s header", SharerHeader)
	}
	return id, nil
}

// parsePaging reads from/size query parameters with sane defaults.
func parsePaging(r *http.Request) (limit, offset int, err error) {
	limit = 20
	offset = 0
	if v := r.URL.Query().Get("size"); v != "" {
		size, convErr := strconv.Atoi(v)
		if convErr != nil || size <= 0 {
			return 0, 0, fmt.Errorf("invalid size")
		}
		limit = size
	}
	if v := r.URL.Query().Get("from"); v != "" {
		from, convErr := strconv.Atoi(v)
		if convErr != nil || from < 0 {
			return 0, 0, fmt.Errorf("invalid from")
		}
		offset = from
	}
	return limit, offset, nil
}
