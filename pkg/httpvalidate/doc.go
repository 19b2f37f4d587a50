// Package httpvalidate puts a validator tree in front of an HTTP handler.
//
//	users := vtree.MustNew(vtree.Config[SignupRequest]{...})
//
//	r := chi.NewRouter()
//	r.Post("/signup", httpvalidate.Handler(users,
//		func(w http.ResponseWriter, r *http.Request, req *SignupRequest) {
//			// req passed validation
//		},
//		httpvalidate.WithStore(store),
//	))
//	r.Get("/reports/{id}", httpvalidate.ReportHandler(store, func(r *http.Request) string {
//		return chi.URLParam(r, "id")
//	}))
//
// Bodies are decoded strictly; failures are answered with 422 and a report,
// optionally localized and stored for replay.
package httpvalidate
