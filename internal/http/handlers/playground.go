package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
)

type playgroundRequest struct {
	Query string `json:"query"`
}

// Mutating or file-touching keywords, matched on word boundaries so column
// names like updated_at pass.
var forbiddenKeywords = regexp.MustCompile(`(?i)\b(insert|update|delete|replace|merge|drop|alter|create|truncate|rename|grant|revoke|call|handler|load|into|outfile|dumpfile|lock|unlock|shutdown|set)\b`)

// PlaygroundRun executes one caller-supplied SELECT statement and returns
// generic columns and rows. Anything else is rejected before it reaches the
// database.
func (a *App) PlaygroundRun(w http.ResponseWriter, r *http.Request) {
	var req playgroundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request", "")
		return
	}

	query, err := guardSelectOnly(req.Query)
	if err != nil {
		a.error(w, r, http.StatusBadRequest, "playground_rejected", err.Error())
		return
	}

	res, err := a.Analytics.RunSelect(r.Context(), query)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) {
			a.error(w, r, http.StatusBadRequest, "playground_rejected", myErr.Message)
			return
		}
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"columns": res.Columns, "rows": res.Rows})
}

// guardSelectOnly admits exactly one SELECT statement. It is a keyword
// guard, not a SQL parser; the database user's privileges are the real
// backstop.
func guardSelectOnly(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", fmt.Errorf("query is required")
	}
	q = strings.TrimSpace(strings.TrimSuffix(q, ";"))
	if strings.ContainsRune(q, ';') {
		return "", fmt.Errorf("multiple statements are not allowed")
	}
	if !strings.HasPrefix(strings.ToLower(q), "select") {
		return "", fmt.Errorf("only SELECT statements are allowed")
	}
	if m := forbiddenKeywords.FindString(q); m != "" {
		return "", fmt.Errorf("forbidden keyword %q", strings.ToLower(m))
	}
	return q, nil
}
