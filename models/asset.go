package models

// ImagePayload is a decoded image ready to be handed to the asset host.
type ImagePayload struct {
	// ContentType is the MIME type, e.g. "image/png".
	ContentType string

	// Filename is optional; asset hosts derive a key when it is empty.
	Filename string

	Data []byte
}

// Asset is an image stored by the asset host.
type Asset struct {
	// URL is the durable, publicly reachable address of the image.
	URL string

	// ID is the host-specific identifier (Cloudinary public_id or S3 key).
	ID string
}

// UploadResponse is returned by the image upload endpoint.
type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// InfoResponse describes the API entry points.
type InfoResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version,omitempty"`
	Employees string `json:"employees"`
	Users     string `json:"users"`
	Upload    string `json:"upload"`
}
