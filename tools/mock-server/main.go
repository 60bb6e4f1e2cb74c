// Package main implements a mock onOffice API server for local development.
// It verifies request signatures against configured credentials and answers
// estate read actions from a JSON fixture, applying filters and paging.
package main

import (
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/estatebot/internal/onoffice"
)

//go:embed testdata/estates.json
var defaultFixture []byte

// record is one estate as returned in data.records.
type record struct {
	ID       int               `json:"id"`
	Type     string            `json:"type"`
	Elements map[string]string `json:"elements"`
}

type server struct {
	apiKey  string
	secret  []byte
	records []record
	log     *slog.Logger
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "", "path to an estates fixture (default: built-in)")
	apiKey := flag.String("api-key", "test-key", "accepted API token")
	secret := flag.String("secret", "test-secret", "accepted secret token")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	data := defaultFixture
	if *fixtureFile != "" {
		var err error
		data, err = os.ReadFile(*fixtureFile) //nolint:gosec // fixture path from trusted CLI flag
		if err != nil {
			logger.Error("failed to read fixture", "path", *fixtureFile, "error", err)
			os.Exit(1)
		}
	}

	records, err := parseFixture(data)
	if err != nil {
		logger.Error("failed to load fixture", "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "estates", len(records))

	s := &server{apiKey: *apiKey, secret: []byte(*secret), records: records, log: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/stable/api.php", s.handleAPI)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock onOffice server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func parseFixture(data []byte) ([]record, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	for i := range records {
		records[i].Type = onoffice.ResourceTypeEstate
	}
	return records, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *server) handleAPI(w http.ResponseWriter, r *http.Request) {
	var req onoffice.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if req.Token != s.apiKey {
		s.log.Warn("unknown token")
		writeJSON(w, statusEnvelope(401, 22, "Unknown token"))
		return
	}

	results := make([]any, 0, len(req.Request.Actions))
	for i := range req.Request.Actions {
		results = append(results, s.runAction(req.Token, &req.Request.Actions[i]))
	}

	resp := statusEnvelope(200, 0, "OK")
	resp["response"] = map[string]any{"results": results}
	writeJSON(w, resp)
}

func (s *server) runAction(token string, a *onoffice.Action) map[string]any {
	result := map[string]any{
		"actionid":     a.ActionID,
		"resourceid":   a.ResourceID,
		"resourcetype": a.ResourceType,
		"identifier":   a.Identifier,
		"cacheable":    true,
	}

	ts, err := strconv.ParseInt(a.Timestamp, 10, 64)
	if err != nil {
		return actionError(result, 137, "invalid timestamp")
	}
	want, err := onoffice.Sign(ts, a.ActionID, a.ResourceType, token, s.secret)
	if err != nil || want != a.HMAC {
		s.log.Warn("signature mismatch", "actionid", a.ActionID)
		return actionError(result, 137, "HMAC invalid")
	}

	if a.ActionID != onoffice.ActionRead || a.ResourceType != onoffice.ResourceTypeEstate {
		return actionError(result, 500, "only estate read is supported")
	}

	matched, err := filterRecords(s.records, a.Parameters.Filter)
	if err != nil {
		return actionError(result, 500, err.Error())
	}
	total := len(matched)
	page := paginate(matched, a.Parameters.ListOffset, a.Parameters.ListLimit)

	out := make([]record, 0, len(page))
	for _, rec := range page {
		out = append(out, project(rec, a.Parameters.Data))
	}

	s.log.Info("estate read", "matched", total, "returned", len(out),
		"offset", a.Parameters.ListOffset, "limit", a.Parameters.ListLimit)

	result["data"] = map[string]any{
		"meta":    map[string]any{"cntabsolute": total},
		"records": out,
	}
	result["status"] = map[string]any{"errorcode": 0, "message": "OK"}
	return result
}

func statusEnvelope(code, errorCode int, message string) map[string]any {
	return map[string]any{
		"status": map[string]any{"code": code, "errorcode": errorCode, "message": message},
	}
}

func actionError(result map[string]any, errorCode int, message string) map[string]any {
	result["data"] = map[string]any{"meta": map[string]any{"cntabsolute": 0}, "records": []any{}}
	result["status"] = map[string]any{"errorcode": errorCode, "message": message}
	return result
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

// filterRecords keeps records matching every predicate of every field.
func filterRecords(records []record, filter onoffice.Filter) ([]record, error) {
	var out []record
	for _, rec := range records {
		ok := true
		for field, preds := range filter {
			for _, p := range preds {
				match, err := matches(rec.Elements[field], p)
				if err != nil {
					return nil, fmt.Errorf("filter on %s: %w", field, err)
				}
				if !match {
					ok = false
				}
			}
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func matches(value string, p onoffice.Predicate) (bool, error) {
	want := fmt.Sprint(p.Val)
	switch p.Op {
	case "=":
		return compare(value, want, func(c int) bool { return c == 0 }), nil
	case "!=":
		return compare(value, want, func(c int) bool { return c != 0 }), nil
	case "<":
		return compare(value, want, func(c int) bool { return c < 0 }), nil
	case "<=":
		return compare(value, want, func(c int) bool { return c <= 0 }), nil
	case ">":
		return compare(value, want, func(c int) bool { return c > 0 }), nil
	case ">=":
		return compare(value, want, func(c int) bool { return c >= 0 }), nil
	case "LIKE":
		return like(want, value), nil
	case "NOT LIKE":
		return !like(want, value), nil
	default:
		return false, fmt.Errorf("unsupported operator %q", p.Op)
	}
}

// compare compares numerically when both sides parse as numbers and
// lexically otherwise.
func compare(a, b string, ok func(int) bool) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return ok(-1)
		case fa > fb:
			return ok(1)
		default:
			return ok(0)
		}
	}
	return ok(strings.Compare(a, b))
}

// like implements SQL LIKE with % wildcards, case-insensitively.
func like(pattern, value string) bool {
	parts := strings.Split(pattern, "%")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	re := regexp.MustCompile("(?is)^" + strings.Join(parts, ".*") + "$")
	return re.MatchString(value)
}

func paginate(records []record, offset, limit int) []record {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(records) {
		return nil
	}
	end := len(records)
	if limit > 0 {
		end = min(offset+limit, len(records))
	}
	return records[offset:end]
}

// project keeps only the requested elements.
func project(rec record, fields []string) record {
	if len(fields) == 0 {
		return rec
	}
	elems := make(map[string]string, len(fields))
	for _, f := range fields {
		if v, ok := rec.Elements[f]; ok {
			elems[f] = v
		}
	}
	return record{ID: rec.ID, Type: rec.Type, Elements: elems}
}
