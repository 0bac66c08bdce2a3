package mailer

// Message тело запроса к сервису отправки писем
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
