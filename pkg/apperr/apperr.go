package apperr

import (
	"fmt"
	"net/http"
)

// Kind classifies a domain failure; each kind maps to exactly one HTTP status.
type Kind int

const (
	KindBadRequest Kind = iota
	KindUnauthorized
	KindNotFound
	KindConflict
)

// Status returns the HTTP status a kind is rendered with. Unauthorized means
// the authenticated principal lacks a role, hence 403 and not 401.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Alert is the uniform problem carried from the service layer to the HTTP
// layer. Entity and Code are machine-stable identifiers used by client UIs
// for i18n; Message is for humans.
type Alert struct {
	Kind    Kind
	Entity  string
	Code    string
	Message string
}

func (a *Alert) Error() string {
	return fmt.Sprintf("%s [%s.%s]", a.Message, a.Entity, a.Code)
}

func BadRequest(message, entity, code string) *Alert {
	return &Alert{Kind: KindBadRequest, Entity: entity, Code: code, Message: message}
}

func Unauthorized(message, entity, code string) *Alert {
	return &Alert{Kind: KindUnauthorized, Entity: entity, Code: code, Message: message}
}

func NotFound(message, entity, code string) *Alert {
	return &Alert{Kind: KindNotFound, Entity: entity, Code: code, Message: message}
}

func Conflict(message, entity, code string) *Alert {
	return &Alert{Kind: KindConflict, Entity: entity, Code: code, Message: message}
}
