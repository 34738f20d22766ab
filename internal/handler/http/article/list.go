package article

import (
	"log/slog"
	"net/http"
	"time"

	"article-cms/internal/common/pagination"
	"article-cms/internal/handler/http/auth"
	"article-cms/internal/handler/http/requestid"
	"article-cms/internal/handler/http/respond"
	"article-cms/internal/observability/logging"
	artUC "article-cms/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得（ページネーション対応）
// @Description  登録されている記事を取得します。ページネーションパラメータを指定して、ページ単位で記事を取得できます。
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        page   query    int  false  "ページ番号 (1-based)" default(1) minimum(1)
// @Param        limit  query    int  false  "1ページあたりの件数" default(10) minimum(1) maximum(100)
// @Success      200 {object} pagination.Response[ListItemDTO] "ページネーション付き記事一覧"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - insufficient permissions"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	acct, ok := auth.AccountFromContext(ctx)
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errInvalidSession)
		return
	}

	// Malformed pagination input degrades to defaults instead of failing.
	params := pagination.ParseQueryParams(r, h.PaginationCfg)

	logger.Info("paginated article list request",
		"page", params.Page,
		"limit", params.Limit,
		"user", acct.Username,
		"request_id", reqID)

	result, err := h.Svc.List(ctx, acct, params)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit,
			"request_id", reqID)
		code := statusFor(err)
		if code >= 500 {
			pagination.RecordError("database")
		}
		respond.SafeError(w, code, err)
		return
	}

	dtos := make([]ListItemDTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, toListDTO(item))
	}

	response := pagination.NewResponse(dtos, result.Pagination)

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(result.Pagination.Total)

	logger.Info("paginated response",
		"page", params.Page,
		"limit", params.Limit,
		"returned_count", len(dtos),
		"duration_ms", duration.Milliseconds(),
		"status", http.StatusOK,
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, response)
}
