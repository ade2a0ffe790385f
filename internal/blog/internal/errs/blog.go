package errs

var (
	SystemError = ErrorCode{Code: 513001, Msg: "errore di sistema"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
