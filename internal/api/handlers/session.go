package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/catalog"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/utils"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/utils/response"
)

// SessionHandler drives the interactive browse session: the search box,
// category tabs, sort dropdown and pager all mutate one shared session and
// read back the same view.
type SessionHandler struct {
	session   *catalog.Session
	validator *validator.Validate
}

func NewSessionHandler(session *catalog.Session) *SessionHandler {
	return &SessionHandler{session: session, validator: validator.New()}
}

func (h *SessionHandler) view() models.SessionView {

	page, searching := h.session.View()
	query := h.session.Query()

	items := page.Items
	if items == nil {
		items = []models.Product{}
	}

	return models.SessionView{
		Items:        items,
		Page:         page.Page,
		TotalPages:   page.TotalPages,
		TotalMatches: page.TotalMatches,
		Search:       query.Search,
		Category:     query.Category,
		Sort:         string(query.Sort),
		Searching:    searching,
	}
}

func (h *SessionHandler) View() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.view())
	}
}

// Search feeds one keystroke into the debouncer. The response carries the
// still-unchanged view; poll View until searching goes false.
func (h *SessionHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.SearchInputRequest

		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request payload"))
			return
		}

		h.session.SetSearch(req.Query)

		response.Success(w, http.StatusOK, h.view())
	}
}

func (h *SessionHandler) SelectCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CategorySelectRequest

		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request payload"))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			var validationErrs validator.ValidationErrors
			if stderrors.As(err, &validationErrs) {
				response.ValidationError(w, validationErrs)
				return
			}

			response.Error(w, errors.ValidationError("Invalid input"))

			return
		}

		h.session.SetCategory(req.Category)

		response.Success(w, http.StatusOK, h.view())
	}
}

func (h *SessionHandler) SelectSort() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.SortSelectRequest

		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request payload"))
			return
		}

		h.session.SetSort(catalog.ParseSortKey(req.Sort))

		response.Success(w, http.StatusOK, h.view())
	}
}

func (h *SessionHandler) SelectPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.PageSelectRequest

		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request payload"))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			var validationErrs validator.ValidationErrors
			if stderrors.As(err, &validationErrs) {
				response.ValidationError(w, validationErrs)
				return
			}

			response.Error(w, errors.ValidationError("Invalid input"))

			return
		}

		h.session.SetPage(req.Page)

		response.Success(w, http.StatusOK, h.view())
	}
}
