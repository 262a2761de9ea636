package response

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ListParams is the page/limit query pair every collection endpoint accepts,
// plus the offset derived from them. It feeds the Paginated envelope.
type ListParams struct {
	Page   int
	Limit  int
	Offset int
}

// GetListParams reads ?page and ?limit. Page floors at 1; limit falls back to
// the default when missing, zero, or above the cap.
func GetListParams(c echo.Context) ListParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}

	return ListParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
