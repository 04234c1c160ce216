package middleware

import "net/http"

// CORSHandle allows cross-origin calls and answers preflight requests with "ok".
func CORSHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.Write([]byte("ok"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
