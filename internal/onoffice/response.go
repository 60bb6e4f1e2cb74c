package onoffice

// Response is the decoded JSON body returned by the API. Its schema is not
// validated; the accessors below read the parts of the envelope the service
// relies on and return zero values when they are missing.
type Response map[string]any

// Body returns the "response" member, or nil.
func (r Response) Body() map[string]any {
	body, _ := r["response"].(map[string]any)
	return body
}

// Records returns the records of the first action result.
func (r Response) Records() []any {
	results, _ := r.Body()["results"].([]any)
	if len(results) == 0 {
		return nil
	}
	first, _ := results[0].(map[string]any)
	data, _ := first["data"].(map[string]any)
	records, _ := data["records"].([]any)
	return records
}

// Count returns the number of records in the first action result.
func (r Response) Count() int {
	return len(r.Records())
}

// StatusCode returns the API-level status code from the top-level status
// object, or 0 when absent. The API reports some failures with HTTP 200 and
// a non-200 code here.
func (r Response) StatusCode() int {
	status, _ := r["status"].(map[string]any)
	code, _ := status["code"].(float64)
	return int(code)
}
