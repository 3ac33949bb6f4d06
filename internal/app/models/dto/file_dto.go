package dto

// UploadResponse is returned by the standalone upload endpoint. Path is
// server-relative; clients concatenate it with the base URL.
type UploadResponse struct {
	Path string `json:"path"`
}

// HealthResponse is the health probe body.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
