package models

// UploadResult describes a stored image.
// swagger:model UploadResult
type UploadResult struct {
	// example: 0b7c0f5e-0a53-4a0e-9b8f-5b7b0c9e2f51_photo.jpg
	Filename string `json:"filename"`
	// example: /uploads/images/0b7c0f5e-0a53-4a0e-9b8f-5b7b0c9e2f51_photo.jpg
	URL string `json:"url"`
}
