package api

import "encoding/json"

// response is embedded by every typed response so the raw body survives
// decoding; --json output and fallback rendering read it.
type response struct {
	Raw json.RawMessage `json:"-"`
}

func (r *response) setRaw(body []byte) {
	r.Raw = append(json.RawMessage(nil), body...)
}

// Memory is a single stored memory record as returned by the server.
// Only the fields the client renders are decoded; anything else the
// server adds is ignored.
type Memory struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
}

// storeRequest is the body of a store call.
type storeRequest struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// StoreResponse is the server's confirmation of a stored memory.
type StoreResponse struct {
	response

	ID     string `json:"id"`
	Status string `json:"status"`
}

// MemoryList is the shared response shape of search and recent.
type MemoryList struct {
	response

	Memories []Memory `json:"memories"`
}

// InitResponse carries the pre-formatted context block returned by init.
// Result may be empty on older servers; callers fall back to Raw.
type InitResponse struct {
	response

	Result string `json:"result"`
}

// HealthResponse reports service liveness and its dependencies.
type HealthResponse struct {
	response

	Status     string `json:"status"`
	Database   string `json:"database"`
	Embeddings string `json:"embeddings"`
	Version    string `json:"version"`
}

// Healthy reports whether the service considers itself fully operational.
func (h *HealthResponse) Healthy() bool {
	return h.Status == "healthy"
}
