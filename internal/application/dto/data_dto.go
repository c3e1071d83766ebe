package dto

// CreateDataRequest is the payload for POST /api/data.
type CreateDataRequest struct {
	Name  string                 `json:"name" binding:"required"`
	Value map[string]interface{} `json:"value"`
}

// UpdateDataRequest is the payload for PUT /api/data/:id.
type UpdateDataRequest struct {
	Name  string                 `json:"name"`
	Value map[string]interface{} `json:"value"`
}

// DataListResponse wraps a data-entry listing with its count.
type DataListResponse struct {
	Count   int         `json:"count"`
	Entries interface{} `json:"entries"`
}
