package requests

// UpdateProfile arrives as a multipart form. Address is the raw JSON string
// from the form; the controller parses it before validation. The image part,
// when present, is decoded into ImageData/ImageExtension by the controller.
type UpdateProfile struct {
	UserID  string `json:"userId" validate:"omitempty"`
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"required,max=20"`
	Address string `json:"address" validate:"omitempty"`
	DOB     string `json:"dob" validate:"required"`
	Gender  string `json:"gender" validate:"required,oneof=male female other"`

	ImageData      []byte `json:"-" validate:"omitempty"`
	ImageExtension string `json:"-" validate:"omitempty"`
}
