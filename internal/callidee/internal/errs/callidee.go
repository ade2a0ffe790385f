package errs

var (
	SystemError     = ErrorCode{Code: 512001, Msg: "errore di sistema"}
	ValidationError = ErrorCode{Code: 512002, Msg: "la candidatura contiene campi non validi"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
