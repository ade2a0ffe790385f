package errs

var (
	SystemError = ErrorCode{Code: 514001, Msg: "errore di sistema"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
