package validators

import (
	"mime"
	"net/http"
	"strings"

	pkgerrors "github.com/luciaferrante/roomvibe-backend/pkg/errors"
)

// IsFormRequest reports whether the request carries a urlencoded or multipart
// form body. Browser form posts take this path; API clients send JSON.
func IsFormRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return true
	}
	return false
}

// ParseForm parses the request's form body, mapping parse failures to a
// validation error.
func ParseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body")
	}
	return nil
}

// FormValue returns the trimmed first value for the named field.
func FormValue(r *http.Request, name string) string {
	return SanitizeString(r.PostForm.Get(name), 0)
}

// FormValues returns all non-blank values for the named field. A field posted
// once still comes back as a one-element slice, so handlers treat scalar and
// repeated submissions uniformly.
func FormValues(r *http.Request, name string) []string {
	raw := r.PostForm[name]
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
