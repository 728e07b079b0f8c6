package validation

// BookingRequest is the payload of the public booking form.  EventDate is
// free text and is never parsed.
type BookingRequest struct {
	Name      string `json:"name" validate:"min=2,max=100"`
	Email     string `json:"email" validate:"email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	EventType string `json:"eventType" validate:"min=1,max=50"`
	EventDate string `json:"eventDate" validate:"min=1"`
	Venue     string `json:"venue" validate:"min=2,max=200"`
	Message   string `json:"message" validate:"min=10,max=2000"`
}

var bookingMessages = map[string]string{
	"name.min":      "Name must be at least 2 characters",
	"name.max":      "Name too long",
	"email.email":   "Invalid email address",
	"phone.max":     "Phone number too long",
	"eventType.min": "Event type is required",
	"eventType.max": "Event type too long",
	"eventDate.min": "Event date is required",
	"venue.min":     "Venue must be at least 2 characters",
	"venue.max":     "Venue too long",
	"message.min":   "Message must be at least 10 characters",
	"message.max":   "Message too long",
}

// ValidateBooking checks the form rules.  The returned error, if any, is
// an *Error whose messages follow field order.
func ValidateBooking(req *BookingRequest) error {
	return validateStruct(req, func(field, tag string) string {
		return bookingMessages[field+"."+tag]
	})
}
