package web

type DeleteReq struct {
	Source   string `json:"source"`
	Filename string `json:"filename"`
}
