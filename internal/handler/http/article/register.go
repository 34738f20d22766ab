package article

import (
	"log/slog"
	"net/http"

	"article-cms/internal/common/pagination"
	"article-cms/internal/handler/http/auth"
	artUC "article-cms/internal/usecase/article"
)

// Register registers the article HTTP handlers with the given mux:
// listing, creating, patching, and deleting. All routes sit behind the auth
// middleware; creation uses the dedicated /articles/add path so that the
// collection path stays read-only.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /articles", auth.Authz(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))

	mux.Handle("POST   /articles/add", auth.Authz(CreateHandler{Svc: svc}))
	mux.Handle("PATCH  /articles/", auth.Authz(PatchHandler{Svc: svc}))
	mux.Handle("DELETE /articles/", auth.Authz(DeleteHandler{Svc: svc}))
}
