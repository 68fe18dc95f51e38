package misc

// Quote is one motivational quote shown on the app home screen.
type Quote struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}
