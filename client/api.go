package client

import "fmt"

// Response is the envelope around every API v2 reply.
type Response[T any] struct {
	APIVersion string    `json:"api_version"`
	Method     string    `json:"method"`
	Fetched    string    `json:"fetched"`
	Data       *T        `json:"data"`
	Error      *APIError `json:"error"`
}

// SingleData holds a single object
type SingleData[T any] struct {
	Object T `json:"object"`
}

// ListData holds one page of objects
type ListData[T any] struct {
	CurrentObjectCount int  `json:"current_object_count"`
	ObjectsPerPage     int  `json:"objects_per_page"`
	TotalObjects       int  `json:"total_objects"`
	PageIndex          int  `json:"page_index"`
	TotalPages         int  `json:"total_pages"`
	HasMore            bool `json:"has_more"`
	Objects            []T  `json:"objects"`
}

// APIError is an error reported by the judge inside the envelope.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with code %d and message `%s`", e.Code, e.Message)
}

// unwrap returns the envelope's data, or its error.
func unwrap[T any](r *Response[T]) (*T, error) {
	switch {
	case r.Error != nil:
		return nil, r.Error
	case r.Data != nil:
		return r.Data, nil
	default:
		return nil, ErrEmptyEnvelope
	}
}
