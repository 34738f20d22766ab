package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"article-cms/internal/accesscontrol"
	"article-cms/internal/common/pagination"
	"article-cms/internal/domain/entity"
	"article-cms/internal/observability/metrics"
	"article-cms/internal/repository"
)

// Delete requests are gated on the connection-reported client address and
// port. The gate trusts what the connection reports; it is an allow-list for
// known clients, not a security boundary.
const (
	allowedFirstOctet = "198"
	securePort        = 443
)

// CreateInput carries a candidate article from a create request.
// Fields holds only the fields actually present in the payload.
type CreateInput struct {
	Type   string
	UUID   string
	Fields map[string]string
}

// PatchInput carries a partial article from a patch request. Only field
// names listed in SubmittedFields are authoritative: a value in Fields whose
// name is not listed must not be applied, even if it carries a default.
type PatchInput struct {
	Type            string
	Fields          map[string]string
	SubmittedFields []string
}

// Peer identifies the network peer a request arrived from, as reported by
// the connection.
type Peer struct {
	Addr string // client IP address, without port
	Port int    // server port the connection arrived on
}

// PaginatedResult represents the result of a paginated list query.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

// Service provides the article management use cases. It delegates
// persistence to the repository and all authorization questions to the
// policy; its own job is composing those calls in the right order.
type Service struct {
	Repo   repository.ArticleRepository
	Policy accesscontrol.Policy
	Logger *slog.Logger
}

func (s *Service) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Service) capabilities(acct accesscontrol.Account) accountCapabilities {
	return accountCapabilities{acct: acct, policy: s.Policy, entityType: entity.TypeArticle}
}

// validate runs entity validation and records failures.
func validate(a *entity.Article, fields ...string) error {
	err := entity.ValidateArticle(a, fields...)
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			metrics.RecordValidationFailure(vErr.Field)
		}
	}
	return err
}

// decideFieldChange runs the field decision and records denials.
func decideFieldChange(caps FieldCapabilities, name, stored, received string) (FieldAction, error) {
	action, err := DecideFieldChange(caps, name, stored, received)
	if err != nil {
		metrics.RecordFieldAccessDenial(name)
	}
	return action, err
}

// denied builds an AccessDeniedError from a policy decision, falling back to
// the given message when the policy supplied no reason.
func denied(d accesscontrol.Decision, fallback string) error {
	msg := d.Reason
	if msg == "" {
		msg = fallback
	}
	return &AccessDeniedError{Message: msg}
}

// List returns one page of articles, newest first.
// Requires the content view permission; an empty page is not an error.
func (s *Service) List(ctx context.Context, acct accesscontrol.Account, params pagination.Params) (*PaginatedResult, error) {
	if d := s.Policy.EntityAccess(acct, accesscontrol.OpView, entity.TypeArticle); !d.Allowed {
		return nil, denied(d, "you are not authorized to view article content")
	}

	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	articles, err := s.Repo.List(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	metrics.UpdateArticlesTotal(total)

	return &PaginatedResult{
		Data: articles,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// Create validates and persists a new article.
//
// The checks run in a fixed order and each failure is terminal: missing
// payload, role-level create permission, entity-level create access, content
// type, client-supplied identifier, per-field edit access, validation. No
// persistence call happens unless every check passed.
func (s *Service) Create(ctx context.Context, acct accesscontrol.Account, in *CreateInput) (*entity.Article, error) {
	if in == nil {
		return nil, &BadRequestError{Message: "no article content received"}
	}
	if !acct.HasPermission(accesscontrol.PermCreateArticle) {
		return nil, &AccessDeniedError{
			Message: fmt.Sprintf("the %q permission is required", accesscontrol.PermCreateArticle),
		}
	}
	if d := s.Policy.EntityAccess(acct, accesscontrol.OpCreate, entity.TypeArticle); !d.Allowed {
		return nil, denied(d, fmt.Sprintf("you are not authorized to create %s content", entity.TypeArticle))
	}
	if in.Type != entity.TypeArticle {
		return nil, &BadRequestError{
			Message: fmt.Sprintf("only %q content is accepted by this endpoint", entity.TypeArticle),
		}
	}
	if in.UUID != "" {
		return nil, &BadRequestError{
			Message: "only new articles may be created; the identifier is assigned by the server",
		}
	}

	caps := s.capabilities(acct)
	art := &entity.Article{}
	for _, name := range entity.ArticleFields {
		received, ok := in.Fields[name]
		if !ok {
			continue
		}
		// Against a fresh entity the stored value is the field default, so the
		// decision reduces to the edit check for any non-default submission.
		stored, _ := art.FieldValue(name)
		action, err := decideFieldChange(caps, name, stored, received)
		if err != nil {
			return nil, err
		}
		if action == FieldApply {
			if err := art.SetFieldValue(name, received); err != nil {
				return nil, err
			}
		}
	}

	if err := validate(art); err != nil {
		return nil, err
	}
	if art.Created.IsZero() {
		art.Created = time.Now().UTC()
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		metrics.RecordArticleOperation("create", false)
		return nil, fmt.Errorf("create article: %w", err)
	}
	metrics.RecordArticleOperation("create", true)
	s.log().Info("article created",
		slog.String("type", entity.TypeArticle),
		slog.String("uuid", art.UUID),
		slog.String("user", acct.Username))
	return art, nil
}

// Patch applies the submitted fields of a partial article to the stored
// entity identified by id and returns the resulting state.
//
// Only fields named in SubmittedFields are considered. An empty langcode is
// skipped outright: the language of an article must never be cleared. Each
// remaining field goes through DecideFieldChange; fields it skips are left
// untouched. When the filtering leaves no changed fields at all, the stored
// entity is returned as-is without validating or saving, so benign
// resubmissions cause no writes.
func (s *Service) Patch(ctx context.Context, acct accesscontrol.Account, id string, in *PatchInput) (*entity.Article, error) {
	if id == "" {
		return nil, &BadRequestError{Message: "article identifier is required"}
	}

	stored, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if stored == nil {
		return nil, ErrArticleNotFound
	}

	if in == nil {
		return nil, &BadRequestError{Message: "no article content received"}
	}
	if in.Type != entity.TypeArticle {
		return nil, &BadRequestError{
			Message: fmt.Sprintf("only %q content is accepted by this endpoint", entity.TypeArticle),
		}
	}

	caps := s.capabilities(acct)
	updated := stored.Clone()
	changed := make([]string, 0, len(in.SubmittedFields))
	for _, name := range in.SubmittedFields {
		received := in.Fields[name]
		if name == entity.FieldLangcode && received == "" {
			continue
		}

		storedVal, ok := stored.FieldValue(name)
		if !ok {
			return nil, &BadRequestError{Message: fmt.Sprintf("unknown field %q", name)}
		}
		action, err := decideFieldChange(caps, name, storedVal, received)
		if err != nil {
			return nil, err
		}
		if action != FieldApply {
			continue
		}
		if err := updated.SetFieldValue(name, received); err != nil {
			return nil, err
		}
		changed = append(changed, name)
	}

	if len(changed) == 0 {
		return stored, nil
	}

	if err := validate(updated, changed...); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, updated); err != nil {
		metrics.RecordArticleOperation("patch", false)
		return nil, fmt.Errorf("update article: %w", err)
	}
	metrics.RecordArticleOperation("patch", true)
	s.log().Info("article updated",
		slog.String("type", entity.TypeArticle),
		slog.String("uuid", updated.UUID),
		slog.String("fields", strings.Join(changed, ",")),
		slog.String("user", acct.Username))
	return updated, nil
}

// Delete removes the article identified by id.
//
// The peer gate runs before the identifier is even looked at: the client
// address must be present, sit in the allow-listed network, and the
// connection must have arrived on the secure port.
func (s *Service) Delete(ctx context.Context, acct accesscontrol.Account, id string, peer Peer) error {
	if peer.Addr == "" {
		return &AccessDeniedError{Message: "client address is required"}
	}
	if firstOctet(peer.Addr) != allowedFirstOctet {
		return &AccessDeniedError{Message: "requests from this network may not delete articles"}
	}
	if peer.Port != securePort {
		return &AccessDeniedError{
			Message: fmt.Sprintf("delete requests must arrive on port %d", securePort),
		}
	}

	if id == "" {
		return &BadRequestError{Message: "article identifier is required"}
	}
	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return ErrArticleNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		metrics.RecordArticleOperation("delete", false)
		return fmt.Errorf("delete article: %w", err)
	}
	metrics.RecordArticleOperation("delete", true)
	s.log().Info("article deleted",
		slog.String("type", entity.TypeArticle),
		slog.String("uuid", id),
		slog.String("user", acct.Username))
	return nil
}

// firstOctet returns the first dot-separated octet of an IPv4 address.
func firstOctet(addr string) string {
	if i := strings.IndexByte(addr, '.'); i >= 0 {
		return addr[:i]
	}
	return addr
}
