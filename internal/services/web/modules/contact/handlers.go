package contact

import (
	"errors"
	"net/http"

	"github.com/aichenitrkl/chapterweb/internal/contactform"
	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	apperrors "github.com/aichenitrkl/chapterweb/internal/services/web/platform/errors"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/flash"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/httpx"
	webi18n "github.com/aichenitrkl/chapterweb/internal/services/web/platform/i18n"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/pagerender"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/publichandler"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/requestmeta"
	"github.com/aichenitrkl/chapterweb/internal/services/web/routepath"
	webtemplates "github.com/aichenitrkl/chapterweb/internal/services/web/templates"
)

const (
	noticeKey  = "contact.success_body"
	maxFormLen = 64 << 10
)

type handlers struct {
	publichandler.Base
	policy requestmeta.SchemePolicy
}

func newHandlers(deps module.Dependencies, policy requestmeta.SchemePolicy) handlers {
	return handlers{Base: publichandler.NewBase(deps), policy: policy}
}

// formState is one render of the form: the submitted values, per-field
// errors, and a banner message.
type formState struct {
	form    contactform.Form
	errs    contactform.FieldErrors
	banner  string
	receipt string
}

func (h handlers) handleContact(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localizer(w, r)
	state := formState{}
	if notice, ok := flash.ReadAndClear(w, r, h.policy); ok && notice.Key == noticeKey {
		state.receipt = notice.Ref
	}
	h.writeForm(w, r, loc, lang, http.StatusOK, state)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if !requestmeta.SameOrigin(r, h.policy) {
		h.WriteError(w, r, apperrors.E(apperrors.KindForbidden, "contact submission without same-origin proof"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormLen)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.WriteError(w, r, apperrors.E(apperrors.KindTooLarge, "contact form exceeds size limit"))
			return
		}
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_input", "parse contact form: "+err.Error()))
		return
	}

	loc, lang := h.Localizer(w, r)
	form := contactform.FromValues(r.PostForm)
	receipt, fieldErrs, err := contactform.Submit(r.Context(), h.Deps.Submitter, form)
	switch {
	case errors.Is(err, contactform.ErrInvalid):
		state := formState{form: form, errs: fieldErrs, banner: webtemplates.T(loc, "contact.form_invalid")}
		if key, spam := fieldErrs[contactform.FieldWebsite]; spam {
			state.banner = webtemplates.T(loc, key)
		}
		h.writeForm(w, r, loc, lang, http.StatusUnprocessableEntity, state)
		return
	case err != nil:
		h.Deps.Log().Printf("web: contact submit request_id=%s: %v", httpx.RequestIDFrom(r), err)
		h.writeForm(w, r, loc, lang, http.StatusServiceUnavailable, formState{form: form, banner: webtemplates.T(loc, "contact.submit_failed")})
		return
	}

	flash.Write(w, r, flash.Success(noticeKey, receipt.Reference), h.policy)
	httpx.WriteRedirect(w, r, routepath.Contact)
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang string, status int, state formState) {
	info := h.Deps.Catalog().Site.Contact
	view := webtemplates.ContactView{
		Copy:      webtemplates.Copy{Loc: loc},
		FormError: state.banner,
		Receipt:   state.receipt,
		MaxLength: contactform.MaxMessageLength,
		Remaining: state.form.Remaining(),
		MailtoURL: state.form.MailtoURL(info.Email),
		Info:      info,
	}
	for _, field := range contactform.Fields() {
		f := webtemplates.FormField{
			Name:      string(field),
			Label:     webtemplates.T(loc, "contact.field_"+string(field)),
			Type:      "text",
			Value:     state.form.Value(field),
			Multiline: field == contactform.FieldMessage,
			Hidden:    field == contactform.FieldWebsite,
		}
		if field == contactform.FieldEmail {
			f.Type = "email"
		}
		if key, ok := state.errs[field]; ok && !f.Hidden {
			f.Error = webtemplates.T(loc, key)
		}
		view.Fields = append(view.Fields, f)
	}

	h.WritePage(w, r, pagerender.Page{
		Loc:         loc,
		Lang:        lang,
		Title:       webtemplates.T(loc, "contact.page_title"),
		Description: webtemplates.T(loc, "contact.meta_description"),
		StatusCode:  status,
		Body:        webtemplates.Contact(view),
	})
}
