package apperrors

// Client-facing messages. The journal UI shows them to the user verbatim.
const (
	MsgUnauthorized       = "Unauthorized"
	MsgInvalidCredentials = "Invalid credentials"
	MsgNoFile             = "No PDF file found in form data"
	MsgNotAFile           = "Uploaded data is not a file"
	MsgNotPDF             = "Uploaded file is not a PDF"
	MsgTooLarge           = "Uploaded file is too large"
	MsgInvalidDateFormat  = "Invalid date format. Expected: dd MMMM yyyy (e.g. 07 July 2025)"
	MsgInvalidDate        = "Invalid date"
	MsgBucketMissing      = "Server configuration error: Bucket name missing."
	MsgUploadFailed       = "Error uploading file to storage"
	MsgUploadSucceeded    = "File uploaded successfully"
	MsgSignedOut          = "Signed out"
	MsgInvalidRequestBody = "Invalid request body"
	MsgSessionFailed      = "Failed to issue session"
	MsgInternal           = "Internal server error"
	MsgEmptyText          = "Text area is empty."
	MsgEntryDateFormat    = "Date must be in format: dd MMMM yyyy (e.g. 07 July 2025)"
)
