package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"health-automation-backend/pkg/response"

	"github.com/gorilla/mux"
)

// pathID parses the numeric path variable key. On failure it writes a 400
// naming label and returns false.
func pathID(w http.ResponseWriter, r *http.Request, key, label string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[key], 10, 64)
	if err != nil {
		response.BadRequest(w, fmt.Sprintf("Invalid %s ID", label))
		return 0, false
	}
	return id, true
}

func pagination(r *http.Request, defaultLimit int) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

func pageMeta(page, limit int, total int64) *response.Meta {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
