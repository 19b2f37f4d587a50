package httpvalidate

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/vtree"
	"github.com/dmitrymomot/vtree/pkg/logger"
	"github.com/dmitrymomot/vtree/pkg/messages"
	"github.com/dmitrymomot/vtree/pkg/report"
	"github.com/dmitrymomot/vtree/pkg/reportstore"
)

// Next receives a request body that decoded and passed validation.
type Next[T any] func(w http.ResponseWriter, r *http.Request, v *T)

type options struct {
	store       reportstore.Store
	translator  report.Translator
	language    func(*http.Request) string
	log         *slog.Logger
	maxBodySize int64
}

// Option configures Handler and ReportHandler.
type Option func(*options)

// WithStore saves every failing report and returns its id as report_id.
func WithStore(s reportstore.Store) Option {
	return func(o *options) { o.store = s }
}

// WithTranslator localizes report messages for the language picked by lang.
func WithTranslator(tr report.Translator, lang func(*http.Request) string) Option {
	return func(o *options) {
		o.translator = tr
		o.language = lang
	}
}

// WithCatalog localizes report messages using the Accept-Language header.
func WithCatalog(c *messages.Catalog) Option {
	return WithTranslator(c, func(r *http.Request) string {
		return c.Match(r.Header.Get("Accept-Language"))
	})
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func WithMaxBodySize(n int64) Option {
	return func(o *options) { o.maxBodySize = n }
}

func newOptions(opts []Option) options {
	o := options{log: logger.Discard(), maxBodySize: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = o.log.With(logger.Component("httpvalidate"))
	return o
}

// Handler decodes the JSON body into a T, validates it and calls next on
// success. Failures are answered with 422 and the report in the tree's
// results type. Each request validates on its own copy of tree, so tree
// must be fully configured before Handler is called.
func Handler[T any](tree *vtree.Tree[T], next Next[T], opts ...Option) http.HandlerFunc {
	o := newOptions(opts)
	resultsType := tree.Options().ResultsType

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		v := new(T)
		if err := DecodeJSON(w, r, v, o.maxBodySize); err != nil {
			_ = WriteJSON(w, decodeStatus(err), Response{Code: CodeBadRequest, Message: err.Error()})
			return
		}

		res, err := tree.Clone().ValidateInfoAsync(ctx, v)
		if err != nil {
			o.log.ErrorContext(ctx, "validation could not run", logger.TreeID(tree.ID()), logger.Error(err))
			_ = WriteJSON(w, http.StatusInternalServerError, Response{Code: CodeInternal, Message: http.StatusText(http.StatusInternalServerError)})
			return
		}
		if res.Success {
			next(w, r, v)
			return
		}

		resp := Response{Code: CodeValidationFailed, Results: res.Results}
		if o.translator != nil {
			localized := report.Localize(res.Report, o.translator, o.language(r))
			resp.Results = report.Encode(localized, resultsType)
		}
		if o.store != nil {
			id, err := o.store.Save(ctx, resp.Results)
			if err != nil {
				o.log.ErrorContext(ctx, "failed to store report", logger.TreeID(tree.ID()), logger.Error(err))
			}
			resp.ReportID = id
		}

		o.log.DebugContext(ctx, "request rejected",
			logger.TreeID(tree.ID()),
			logger.ReportID(resp.ReportID),
			logger.Count(len(res.Report.Fields())),
		)
		_ = WriteJSON(w, http.StatusUnprocessableEntity, resp)
	}
}

// ReportHandler serves a stored report. id extracts the report id from the
// request, e.g. a router path parameter.
func ReportHandler(store reportstore.Store, id func(*http.Request) string, opts ...Option) http.HandlerFunc {
	o := newOptions(opts)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reportID := id(r)

		enc, err := store.Load(ctx, reportID)
		switch {
		case errors.Is(err, reportstore.ErrInvalidID):
			_ = WriteJSON(w, http.StatusBadRequest, Response{Code: CodeBadRequest, Message: "invalid report id"})
			return
		case errors.Is(err, reportstore.ErrNotFound):
			_ = WriteJSON(w, http.StatusNotFound, Response{Code: CodeNotFound, Message: "report not found"})
			return
		case err != nil:
			o.log.ErrorContext(ctx, "failed to load report", logger.ReportID(reportID), logger.Error(err))
			_ = WriteJSON(w, http.StatusInternalServerError, Response{Code: CodeInternal, Message: http.StatusText(http.StatusInternalServerError)})
			return
		}

		_ = WriteJSON(w, http.StatusOK, Response{Code: CodeValidationFailed, Results: enc, ReportID: reportID})
	}
}
