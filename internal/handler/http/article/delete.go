package article

import (
	"net"
	"net/http"
	"strconv"

	"article-cms/internal/accesscontrol"
	"article-cms/internal/handler/http/auth"
	"article-cms/internal/handler/http/pathutil"
	"article-cms/internal/handler/http/respond"
	artUC "article-cms/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事削除
// @Summary      記事削除
// @Description  記事を削除します。許可されたネットワークからのセキュア接続のみ受け付けます。
// @Tags         articles
// @Security     BearerAuth
// @Param        uuid path string true "記事UUID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid identifier or unknown article"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - client network or port not allowed"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles/{uuid} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// The peer gate inside Delete runs before the identifier check, so the
	// path is parsed leniently here: an unparsable id is passed through
	// empty rather than rejected up front.
	id, err := pathutil.ExtractUUID(r.URL.Path, "/articles/")
	if err != nil {
		id = ""
	}

	if err := h.Svc.Delete(r.Context(), accountOrAnonymous(r), id, peerFromRequest(r)); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// accountOrAnonymous returns the authenticated account, or an anonymous one
// when none is present. Delete authorization hinges on the peer gate, not on
// the account, so the handler does not insist on one.
func accountOrAnonymous(r *http.Request) accesscontrol.Account {
	if acct, ok := auth.AccountFromContext(r.Context()); ok {
		return acct
	}
	return accesscontrol.NewAccount("anonymous", "", nil)
}

// peerFromRequest extracts the connection-reported client address and port.
func peerFromRequest(r *http.Request) artUC.Peer {
	host, portStr, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port: treat the whole value as the address.
		return artUC.Peer{Addr: r.RemoteAddr}
	}
	port, _ := strconv.Atoi(portStr)
	return artUC.Peer{Addr: host, Port: port}
}
