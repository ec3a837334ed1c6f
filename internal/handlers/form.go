package handler

import (
	"net/http"
	"strconv"
	"strings"

	ierr "charty-dashboard-backend/internal/errors"
	"charty-dashboard-backend/internal/services/actions"
	"charty-dashboard-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

const maxFormMemory = 1 << 20

// readForm flattens a urlencoded or multipart body into a Form.
func readForm(c *gin.Context) (validation.Form, error) {
	var err error
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		err = c.Request.ParseMultipartForm(maxFormMemory)
	} else {
		err = c.Request.ParseForm()
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not read the submitted form.").
			Mark(ierr.ErrValidation)
	}
	return validation.FormFromValues(c.Request.PostForm), nil
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// renderState writes an action result: 303 to the listing on a redirect,
// 200 otherwise, 422 for field errors and 500 for store failures.
func renderState(c *gin.Context, state actions.ActionState, err error) {
	if err != nil {
		_ = c.Error(err)
		return
	}

	switch state.Outcome {
	case actions.OutcomeValidationFailed:
		c.JSON(http.StatusUnprocessableEntity, state)
	case actions.OutcomeStoreFailed:
		c.JSON(http.StatusInternalServerError, state)
	default:
		if state.Redirect != "" {
			c.Header("Location", state.Redirect)
			c.JSON(http.StatusSeeOther, state)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

type listingResponse struct {
	Data       interface{} `json:"data"`
	TotalPages int         `json:"total_pages"`
	Page       int         `json:"page"`
}
