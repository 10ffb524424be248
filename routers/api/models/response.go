package models

// Response is the JSON shape shared by error responses
type Response struct {
	Status int    `json:"status"`
	Err    string `json:"error"`
}
