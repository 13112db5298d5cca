package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/yatube/shared/domain"
	"github.com/itchan-dev/yatube/shared/errors"
)

// parsePage never fails: garbage in ?page= means the first page
func parsePage(r *http.Request) int {
	return domain.ParsePageNumber(r.URL.Query().Get("page"))
}

// parsePostId reads the {id} url parameter. Non-numeric ids cannot exist, so they are reported as not found.
func parsePostId(r *http.Request) (domain.PostId, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errors.NotFound("Post not found")
	}
	return id, nil
}

func postURL(id domain.PostId) string {
	return fmt.Sprintf("/posts/%d/", id)
}

func profileURL(username domain.Username) string {
	return fmt.Sprintf("/profile/%s/", username)
}
