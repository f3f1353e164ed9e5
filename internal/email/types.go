package email

// Email is a single outbound message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData feeds the html templates.
type TemplateData struct {
	UserName    string
	Code        string
	ActionURL   string
	ActionText  string
	CompanyName string
}
