package request

// Messages maps validator struct namespaces to the field-level messages the
// API contract promises. Fields absent here fall back to the raw validator
// message.
var Messages = map[string]string{
	"RegisterRequest.Name":     "Name is required",
	"RegisterRequest.Email":    "Please include a valid email",
	"RegisterRequest.Password": "Please enter a password with 6 or more characters",

	"LoginRequest.Email":    "Please include a valid email",
	"LoginRequest.Password": "Password is required",

	"UpdateAvatarRequest.Avatar": "Avatar is required",

	"UpsertProfileRequest.Status": "Status is required",
	"UpsertProfileRequest.Skills": "Skills is required",

	"ExperienceRequest.Title":   "Title is required",
	"ExperienceRequest.Company": "Company is required",
	"ExperienceRequest.From":    "From date is required",
	"ExperienceRequest.To":      "To date must be a valid date",

	"EducationRequest.School":       "School is required",
	"EducationRequest.Degree":       "Degree is required",
	"EducationRequest.FieldOfStudy": "Field of study is required",
	"EducationRequest.From":         "From date is required",
	"EducationRequest.To":           "To date must be a valid date",

	"CreatePostRequest.Text": "Text is required",
	"CommentRequest.Text":    "Text is required",
}
