package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID

	CodeCreateGame

	// Human fleet placement; server validates the footprints and
	// the client retries on a placement error
	CodePlaceShips
	CodeStartGame

	CodeAttack
	CodeEndGame

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
