package errs

var (
	SystemError    = ErrorCode{Code: 515001, Msg: "errore di sistema"}
	FileNonValido  = ErrorCode{Code: 515002, Msg: "file non valido"}
	LimiteSuperato = ErrorCode{Code: 515003, Msg: "limite upload raggiunto"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
