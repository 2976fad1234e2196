package dto

// ListResponse is the envelope for every paginated collection.
type ListResponse[T any] struct {
	Total    int64 `json:"total"`
	Items    []T   `json:"items"`
	NumPages int   `json:"num_pages"`
}

// StatusResponse acknowledges an operation with no payload.
type StatusResponse struct {
	Status string `json:"status"`
}

// StatusOK is the acknowledgement body for successful deletes.
var StatusOK = StatusResponse{Status: "ok"}
