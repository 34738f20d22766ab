package article

import (
	"encoding/json"
	"net/http"

	"article-cms/internal/handler/http/auth"
	"article-cms/internal/handler/http/pathutil"
	"article-cms/internal/handler/http/respond"
	artUC "article-cms/internal/usecase/article"
)

type PatchHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事更新
// @Summary      記事の部分更新
// @Description  送信されたフィールドのみを既存の記事に適用します。
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        uuid path string true "記事UUID"
// @Param        article body articlePayload true "更新するフィールド"
// @Success      200 {object} DTO "更新後の記事"
// @Failure      400 {string} string "Bad request - invalid input or unknown article"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - insufficient permissions"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles/{uuid} [patch]
func (h PatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	acct, ok := auth.AccountFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errInvalidSession)
		return
	}

	id, err := pathutil.ExtractUUID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req articlePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := h.Svc.Patch(r.Context(), acct, id, &artUC.PatchInput{
		Type:            deref(req.Type),
		Fields:          req.fields(),
		SubmittedFields: req.submitted(),
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(updated))
}
