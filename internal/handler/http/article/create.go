package article

import (
	"encoding/json"
	"net/http"

	"article-cms/internal/handler/http/auth"
	"article-cms/internal/handler/http/respond"
	artUC "article-cms/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します。識別子はサーバー側で発行されます。
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body articlePayload true "記事情報"
// @Success      201 {object} DTO "作成された記事"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - insufficient permissions"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles/add [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	acct, ok := auth.AccountFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errInvalidSession)
		return
	}

	var req articlePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := h.Svc.Create(r.Context(), acct, &artUC.CreateInput{
		Type:   deref(req.Type),
		UUID:   deref(req.UUID),
		Fields: req.fields(),
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(created))
}
